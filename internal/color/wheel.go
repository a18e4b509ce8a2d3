package color

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// WheelPos is a point on the unit color wheel. Hue maps to the angle and
// saturation to the distance from center, so both coordinates lie in
// [-1,1]; (0,0) is reserved for black.
type WheelPos struct {
	X float64
	Y float64
}

// WheelPosition projects an approximate color onto the color wheel.
// Black short-circuits to the center before any hue math runs; grays land
// at the center naturally because their saturation is zero.
func WheelPosition(c RGB) WheelPos {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return WheelPos{}
	}

	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	hue, sat, _ := col.Hsv()

	rad := hue * math.Pi / 180.0
	return WheelPos{
		X: sat * math.Cos(rad),
		Y: sat * math.Sin(rad),
	}
}
