package color

import "math"

// Temperature is a coarse color-temperature bucket derived from the
// red/blue balance of an approximate color.
type Temperature string

const (
	TempVeryWarm Temperature = "very-warm"
	TempWarm     Temperature = "warm"
	TempNeutral  Temperature = "neutral"
	TempCool     Temperature = "cool"
	TempVeryCool Temperature = "very-cool"
)

// ClassifyTemperature buckets a color by its red/blue ratio. A high r/b
// ratio reads warm, a high b/r ratio reads cool, and green-dominant colors
// read cool. Near-black colors carry no usable temperature and return
// neutral. First matching rule wins; order is exact.
func ClassifyTemperature(c RGB) Temperature {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	if math.Max(r, math.Max(g, b)) < 0.1 {
		return TempNeutral
	}

	// Ratio guards: a zero denominator pins the ratio instead of dividing.
	var rbRatio, brRatio float64
	if r > 0 && b > 0 {
		rbRatio = r / b
		brRatio = b / r
	} else {
		if r > 0 {
			rbRatio = 10
		}
		if b > 0 {
			brRatio = 10
		}
	}

	switch {
	case rbRatio > 3:
		return TempVeryWarm
	case rbRatio > 1.5:
		return TempWarm
	case brRatio > 3:
		return TempVeryCool
	case brRatio > 1.5:
		return TempCool
	case g > math.Max(r, b)*1.5:
		return TempCool
	case math.Abs(r-b) < 0.1 && r > 0.7 && g > 0.7:
		return TempNeutral
	case math.Abs(r-b) < 0.2:
		return TempNeutral
	case r > b:
		return TempWarm
	default:
		return TempCool
	}
}
