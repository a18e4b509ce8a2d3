package grid

import (
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saaga0h/dmx-palette/internal/color"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnumerateSkipRules(t *testing.T) {
	entries := Enumerate(testLogger())
	require.NotEmpty(t, entries)

	for _, e := range entries {
		c := e.Channels
		assert.False(t, c.R == 255 && c.G == 255 && c.B == 255,
			"pure white combination %s should be skipped", e.Name)
		assert.NotEqual(t, color.LevelOff, e.Result.Brightness,
			"entry %s with Off brightness should be skipped", e.Name)
	}
}

func TestEnumerateSequentialIndexes(t *testing.T) {
	entries := Enumerate(testLogger())

	for i, e := range entries {
		assert.Equal(t, i+1, e.Index)
	}
}

func TestEnumerateDeterministic(t *testing.T) {
	first := Enumerate(testLogger())
	second := Enumerate(testLogger())

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Channels, second[i].Channels)
		assert.Equal(t, *first[i].Result, *second[i].Result)
	}
}

func TestName(t *testing.T) {
	name := Name(color.Channels{R: 85, G: 0, B: 170, W: 0, A: 255})
	assert.Equal(t, "R=85 (Dim) + G=0 (Off) + B=170 (Mid) + W=0 (Off) + A=255 (Full)", name)
}

func TestBrightnessKeyIgnoresAmber(t *testing.T) {
	// Full amber alone survives enumeration (it projects to a dim orange)
	// but sorts as Off because the key zeroes the amber contribution.
	c := color.Channels{A: 255}
	assert.Equal(t, color.LevelDim, color.Brightness(color.Project(c)))
	assert.Equal(t, color.LevelOff, BrightnessKey(c))
}

func TestSortedByBrightness(t *testing.T) {
	entries := Enumerate(testLogger())
	sorted := SortedByBrightness(entries)

	require.Equal(t, len(entries), len(sorted))

	// Keys ascend.
	assert.True(t, sort.SliceIsSorted(sorted, func(i, j int) bool {
		return BrightnessKey(sorted[i].Channels) < BrightnessKey(sorted[j].Channels)
	}))

	// Stable: within a brightness band, grid order is preserved.
	lastIndex := map[color.Level]int{}
	for _, e := range sorted {
		key := BrightnessKey(e.Channels)
		assert.Greater(t, e.Index, lastIndex[key],
			"entries within brightness %d must keep grid order", key)
		lastIndex[key] = e.Index
	}

	// The original slice is untouched.
	for i, e := range entries {
		assert.Equal(t, i+1, e.Index)
	}
}
