// Package grid enumerates the discrete RGBWA control grid and evaluates
// the color model for every surviving combination.
package grid

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/saaga0h/dmx-palette/internal/color"
)

// Steps are the discrete DMX levels evaluated per channel, 4^5 = 1024
// combinations before skips.
var Steps = []int{0, 85, 170, 255}

// Entry is one surviving grid combination paired with its evaluated result.
type Entry struct {
	Index    int
	Name     string
	Channels color.Channels
	Result   *color.Result
}

// Enumerate walks the full channel grid in R, G, B, W, A nesting order and
// evaluates each combination. Two classes of combinations are skipped:
// r=g=b=255 renders pure white regardless of W and A, and any result whose
// quantized brightness is Off is effectively black. Surviving entries are
// numbered sequentially from 1.
func Enumerate(logger *slog.Logger) []Entry {
	entries := make([]Entry, 0, len(Steps)*len(Steps)*len(Steps)*len(Steps)*len(Steps))
	index := 1

	for _, r := range Steps {
		for _, g := range Steps {
			for _, b := range Steps {
				for _, w := range Steps {
					for _, a := range Steps {
						if r == 255 && g == 255 && b == 255 {
							continue
						}

						ch := color.Channels{R: r, G: g, B: b, W: w, A: a}
						result, err := color.Evaluate(ch)
						if err != nil {
							// Grid steps are always in range.
							logger.Error("Unexpected evaluation failure",
								"channels", Name(ch),
								"error", err)
							continue
						}

						if result.Brightness == color.LevelOff {
							continue
						}

						entries = append(entries, Entry{
							Index:    index,
							Name:     Name(ch),
							Channels: ch,
							Result:   result,
						})
						index++
					}
				}
			}
		}
	}

	logger.Info("Enumerated control grid",
		"steps_per_channel", len(Steps),
		"surviving_entries", len(entries))

	return entries
}

// Name builds the descriptive label for a quintuple, e.g.
// "R=85 (Dim) + G=0 (Off) + B=170 (Mid) + W=0 (Off) + A=255 (Full)".
func Name(c color.Channels) string {
	parts := []string{
		fmt.Sprintf("R=%d (%s)", c.R, color.Level(c.R).Name()),
		fmt.Sprintf("G=%d (%s)", c.G, color.Level(c.G).Name()),
		fmt.Sprintf("B=%d (%s)", c.B, color.Level(c.B).Name()),
		fmt.Sprintf("W=%d (%s)", c.W, color.Level(c.W).Name()),
		fmt.Sprintf("A=%d (%s)", c.A, color.Level(c.A).Name()),
	}
	return strings.Join(parts, " + ")
}

// BrightnessKey is the sort key for the brightness ordering: the quantized
// brightness of the projection with the amber contribution forced to zero,
// so amber-heavy combinations do not inflate their rank.
func BrightnessKey(c color.Channels) color.Level {
	noAmber := c
	noAmber.A = 0
	return color.Brightness(color.Project(noAmber))
}

// SortedByBrightness returns a new slice ordered by ascending amber-free
// brightness. The sort is stable so entries within a brightness band keep
// their grid order.
func SortedByBrightness(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return BrightnessKey(sorted[i].Channels) < BrightnessKey(sorted[j].Channels)
	})

	return sorted
}
