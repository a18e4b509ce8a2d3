package color

// Level is a perceived brightness quantized to one of the four canonical
// DMX steps.
type Level int

const (
	LevelOff  Level = 0
	LevelDim  Level = 85
	LevelMid  Level = 170
	LevelFull Level = 255
)

// Name returns the display name for a canonical step value. The same names
// apply to raw channel step values, so grid naming reuses this.
func (l Level) Name() string {
	switch l {
	case LevelOff:
		return "Off"
	case LevelDim:
		return "Dim"
	case LevelMid:
		return "Mid"
	case LevelFull:
		return "Full"
	}
	return "Unknown"
}

// Luma computes the perceptually weighted brightness of an RGB color using
// the standard 0.299/0.587/0.114 weights. Result is in [0,255].
func Luma(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// Quantize snaps a raw luma value to the nearest canonical brightness step.
// The boundaries are the integer-truncated midpoints between successive
// steps (42, 127, 212) and must stay exact for output compatibility.
func Quantize(raw float64) Level {
	switch {
	case raw < 42:
		return LevelOff
	case raw < 127:
		return LevelDim
	case raw < 212:
		return LevelMid
	default:
		return LevelFull
	}
}

// Brightness quantizes the perceived brightness of an approximate color.
func Brightness(c RGB) Level {
	return Quantize(Luma(c))
}
