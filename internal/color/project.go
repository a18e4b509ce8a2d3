package color

// RGB is the approximate 3-channel display color produced from a validated
// RGBWA quintuple. Channels are post-clamp integers in [0,255].
type RGB struct {
	R int
	G int
	B int
}

// Scale factors for the white and amber contributions. Both run at half
// strength to keep stacked channels from washing every result out to white;
// amber mixes at a 1.0:0.75:0.0 R:G:B ratio. These are fixed compatibility
// constants of the approximation, not fixture calibration.
const (
	wScale     = 0.5
	aScale     = 0.5
	amberGreen = 0.75
)

// Project maps a validated RGBWA quintuple to an approximate RGB color.
// White adds equally to all three channels, amber adds to red and green
// only. Sums are clamped at 255 and truncated, not rounded. This is an
// additive approximation, not a physical color-mixing model.
func Project(c Channels) RGB {
	rr := float64(c.R) + float64(c.W)*wScale + float64(c.A)*aScale
	gg := float64(c.G) + float64(c.W)*wScale + float64(c.A)*amberGreen*aScale
	bb := float64(c.B) + float64(c.W)*wScale

	return RGB{
		R: clampChannel(rr),
		G: clampChannel(gg),
		B: clampChannel(bb),
	}
}

// clampChannel caps the additive sum at 255 and truncates the fraction.
// Inputs are non-negative so no lower clamp is needed.
func clampChannel(v float64) int {
	if v > 255 {
		return 255
	}
	return int(v)
}
