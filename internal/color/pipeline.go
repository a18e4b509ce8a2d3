// Package color implements the RGBWA fixture color model: a deterministic
// pipeline from a 5-channel DMX control value to an approximate display
// color and its derived classifications. Every function is pure and
// stateless; the only failure mode is an out-of-range input channel.
package color

// Result aggregates everything the model derives from one channel
// quintuple. The four derived facts are independent functions of Color.
type Result struct {
	Color          RGB
	Brightness     Level
	Classification Classification
	Wheel          WheelPos
	Temperature    Temperature
}

// Evaluate runs the full pipeline for one quintuple: validate, project to
// an approximate color, then derive brightness, classification, wheel
// position and temperature. An out-of-range channel aborts the whole
// computation; there is no partial result.
func Evaluate(c Channels) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rgb := Project(c)

	return &Result{
		Color:          rgb,
		Brightness:     Brightness(rgb),
		Classification: Classify(rgb),
		Wheel:          WheelPosition(rgb),
		Temperature:    ClassifyTemperature(rgb),
	}, nil
}
