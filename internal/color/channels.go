package color

import "fmt"

// Channels holds the raw DMX values for a 5-channel RGBWA fixture.
// Each channel is one DMX byte, 0-255.
type Channels struct {
	R int
	G int
	B int
	W int
	A int
}

// RangeError reports a channel value outside the valid DMX range.
type RangeError struct {
	Channel string
	Value   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("DMX value %d on channel %s outside valid range 0-255", e.Value, e.Channel)
}

// Validate checks that every channel lies in [0,255]. The first offending
// channel aborts validation; no partial result is produced downstream.
func (c Channels) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"R", c.R},
		{"G", c.G},
		{"B", c.B},
		{"W", c.W},
		{"A", c.A},
	}

	for _, ch := range checks {
		if ch.value < 0 || ch.value > 255 {
			return &RangeError{Channel: ch.name, Value: ch.value}
		}
	}

	return nil
}
