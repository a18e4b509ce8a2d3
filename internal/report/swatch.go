package report

import (
	"context"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/saaga0h/dmx-palette/internal/grid"
)

// SwatchRenderer writes one flat-color PNG per grid entry. Entries are
// independent, so rendering fans out over a bounded worker pool.
type SwatchRenderer struct {
	dir     string
	size    int
	workers int
	logger  *slog.Logger
}

// NewSwatchRenderer creates a renderer writing size x size swatches into dir.
func NewSwatchRenderer(dir string, size, workers int, logger *slog.Logger) *SwatchRenderer {
	if workers < 1 {
		workers = 1
	}
	return &SwatchRenderer{
		dir:     dir,
		size:    size,
		workers: workers,
		logger:  logger,
	}
}

// SwatchFilename builds the image filename for an entry: the zero-padded
// index plus the entry name with separators collapsed,
// e.g. "0001_R=0(Off)_G=0(Off)_B=85(Dim)_W=0(Off)_A=0(Off).png".
func SwatchFilename(e grid.Entry) string {
	name := strings.ReplaceAll(e.Name, " + ", "_")
	name = strings.ReplaceAll(name, " ", "")
	return fmt.Sprintf("%04d_%s.png", e.Index, name)
}

// RenderAll writes a swatch for every entry, honoring context cancellation.
// The first write failure cancels the remaining work.
func (r *SwatchRenderer) RenderAll(ctx context.Context, entries []grid.Entry) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create swatch directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, e := range entries {
		e := e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.render(e); err != nil {
				return fmt.Errorf("swatch %d: %w", e.Index, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	r.logger.Info("Rendered swatch images",
		"count", len(entries),
		"dir", r.dir,
		"size_px", r.size)

	return nil
}

func (r *SwatchRenderer) render(e grid.Entry) error {
	c := stdcolor.RGBA{
		R: uint8(e.Result.Color.R),
		G: uint8(e.Result.Color.G),
		B: uint8(e.Result.Color.B),
		A: 255,
	}

	img := image.NewRGBA(image.Rect(0, 0, r.size, r.size))
	for y := 0; y < r.size; y++ {
		for x := 0; x < r.size; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	f, err := os.Create(filepath.Join(r.dir, SwatchFilename(e)))
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}

	return nil
}
