// Package report serializes evaluated grid entries into the CSV tables,
// PNG swatches and the HTML preview page.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/saaga0h/dmx-palette/internal/grid"
)

var csvHeader = []string{
	"Index", "Name",
	"R DMX", "G DMX", "B DMX", "W DMX", "A DMX",
	"sR", "sG", "sB",
	"Brightness", "Brightness Name",
	"Color Group", "Category", "Temperature",
}

// WriteCSV writes one table with a row per entry in the given order.
func WriteCSV(path string, entries []grid.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.Index),
			e.Name,
			strconv.Itoa(e.Channels.R),
			strconv.Itoa(e.Channels.G),
			strconv.Itoa(e.Channels.B),
			strconv.Itoa(e.Channels.W),
			strconv.Itoa(e.Channels.A),
			strconv.Itoa(e.Result.Color.R),
			strconv.Itoa(e.Result.Color.G),
			strconv.Itoa(e.Result.Color.B),
			strconv.Itoa(int(e.Result.Brightness)),
			e.Result.Brightness.Name(),
			e.Result.Classification.Label(),
			string(e.Result.Classification.Category),
			string(e.Result.Temperature),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", e.Index, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
