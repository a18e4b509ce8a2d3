package color

import "testing"

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		channels Channels
		expected RGB
	}{
		{"all zero", Channels{0, 0, 0, 0, 0}, RGB{0, 0, 0}},
		{"full rgb clamps", Channels{255, 255, 255, 0, 0}, RGB{255, 255, 255}},
		{"everything full clamps", Channels{255, 255, 255, 255, 255}, RGB{255, 255, 255}},
		// White adds half strength to all channels: 85 + 170*0.5 = 170.
		{"white only", Channels{0, 0, 0, 170, 0}, RGB{85, 85, 85}},
		{"white on top", Channels{85, 85, 85, 170, 0}, RGB{170, 170, 170}},
		// Amber adds half strength at 1.0:0.75:0.0, truncated:
		// r += 85*0.5 = 42.5 → .5 dropped; g += 85*0.375 = 31.875 → 31.
		{"amber only", Channels{0, 0, 0, 0, 85}, RGB{42, 31, 0}},
		{"amber full", Channels{0, 0, 0, 0, 255}, RGB{127, 95, 0}},
		// Regression fixture projection.
		{"mixed", Channels{85, 0, 170, 0, 255}, RGB{212, 95, 170}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Project(tt.channels)
			if result != tt.expected {
				t.Errorf("Project(%+v) = %+v, want %+v", tt.channels, result, tt.expected)
			}
		})
	}
}

func TestProjectStaysInRange(t *testing.T) {
	steps := []int{0, 85, 170, 255}

	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				for _, w := range steps {
					for _, a := range steps {
						c := Project(Channels{R: r, G: g, B: b, W: w, A: a})
						for _, v := range []int{c.R, c.G, c.B} {
							if v < 0 || v > 255 {
								t.Fatalf("Project(%d,%d,%d,%d,%d) produced channel %d outside [0,255]",
									r, g, b, w, a, v)
							}
						}
					}
				}
			}
		}
	}
}
