package report

import (
	"context"
	"encoding/csv"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saaga0h/dmx-palette/internal/color"
	"github.com/saaga0h/dmx-palette/internal/grid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEntries(t *testing.T) []grid.Entry {
	t.Helper()

	quintuples := []color.Channels{
		{R: 85, G: 0, B: 170, W: 0, A: 255},
		{R: 255, G: 170, B: 0, W: 0, A: 0},
		{R: 0, G: 0, B: 0, W: 255, A: 0},
	}

	entries := make([]grid.Entry, 0, len(quintuples))
	for i, q := range quintuples {
		result, err := color.Evaluate(q)
		require.NoError(t, err)
		entries = append(entries, grid.Entry{
			Index:    i + 1,
			Name:     grid.Name(q),
			Channels: q,
			Result:   result,
		})
	}
	return entries
}

func TestWriteCSV(t *testing.T) {
	entries := testEntries(t)
	path := filepath.Join(t.TempDir(), "dmx_colors.csv")

	require.NoError(t, WriteCSV(path, entries))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(entries)+1)

	assert.Equal(t, csvHeader, rows[0])

	// Spot-check the fixture row.
	fixture := rows[1]
	assert.Equal(t, "1", fixture[0])
	assert.Equal(t, "R=85 (Dim) + G=0 (Off) + B=170 (Mid) + W=0 (Off) + A=255 (Full)", fixture[1])
	assert.Equal(t, []string{"85", "0", "170", "0", "255"}, fixture[2:7])
	assert.Equal(t, []string{"212", "95", "170"}, fixture[7:10])
	assert.Equal(t, "170", fixture[10])
	assert.Equal(t, "Mid", fixture[11])
	assert.Equal(t, "magenta", fixture[12])
	assert.Equal(t, "cool", fixture[13])
	assert.Equal(t, "neutral", fixture[14])
}

func TestSwatchFilename(t *testing.T) {
	entries := testEntries(t)
	name := SwatchFilename(entries[0])
	assert.Equal(t, "0001_R=85(Dim)_G=0(Off)_B=170(Mid)_W=0(Off)_A=255(Full).png", name)
}

func TestRenderAll(t *testing.T) {
	entries := testEntries(t)
	dir := filepath.Join(t.TempDir(), "swatches")

	renderer := NewSwatchRenderer(dir, 20, 4, testLogger())
	require.NoError(t, renderer.RenderAll(context.Background(), entries))

	for _, e := range entries {
		f, err := os.Open(filepath.Join(dir, SwatchFilename(e)))
		require.NoError(t, err)

		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)

		assert.Equal(t, 20, img.Bounds().Dx())
		assert.Equal(t, 20, img.Bounds().Dy())

		r, g, b, _ := img.At(10, 10).RGBA()
		assert.Equal(t, e.Result.Color.R, int(r>>8))
		assert.Equal(t, e.Result.Color.G, int(g>>8))
		assert.Equal(t, e.Result.Color.B, int(b>>8))
	}
}

func TestRenderAllCancelled(t *testing.T) {
	entries := testEntries(t)
	dir := filepath.Join(t.TempDir(), "swatches")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	renderer := NewSwatchRenderer(dir, 20, 1, testLogger())
	err := renderer.RenderAll(ctx, entries)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteHTML(t *testing.T) {
	entries := testEntries(t)
	sorted := grid.SortedByBrightness(entries)
	path := filepath.Join(t.TempDir(), "dmx_preview.html")

	require.NoError(t, WriteHTML(path, "test-run", entries, sorted, testLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(data)

	// Per-entry metadata lands as filterable data attributes.
	assert.Contains(t, page, `data-color-group="magenta"`)
	assert.Contains(t, page, `data-category="cool"`)
	assert.Contains(t, page, `data-temperature="neutral"`)
	assert.Contains(t, page, `data-brightness="170"`)

	// Swatch images are referenced by sanitized filename.
	assert.Contains(t, page, "swatches/"+SwatchFilename(entries[0]))

	// The wheel view plots one dot per entry.
	assert.Equal(t, len(entries), strings.Count(page, "class=\"color-dot\""))

	// Both orderings render, so each entry appears twice as a swatch,
	// each with its own favorite toggle.
	assert.Equal(t, 2*len(entries), strings.Count(page, "class=\"swatch\""))
	assert.Equal(t, 2*len(entries), strings.Count(page, "class=\"favorite-btn\""))

	// Three top-level sections: wheel view, index grid, and the
	// always-visible brightness ordering in its own section outside the
	// grid view.
	assert.Equal(t, 3, strings.Count(page, "class=\"section\""))
	assert.Contains(t, page, "<div class=\"section\">\n        <h2>Swatches by Brightness</h2>")

	// Favorites and dark mode persist through localStorage.
	assert.Contains(t, page, `id="filter-favorites"`)
	assert.Contains(t, page, "dmxFavorites")
	assert.Contains(t, page, `id="dark-mode-toggle"`)
	assert.Contains(t, page, "dmxDarkMode")

	assert.Contains(t, page, "run test-run")
}
