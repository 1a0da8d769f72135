package domain

// Transform is the set of animatable channels attached to a layer.
// Channels a variant never writes keep their static defaults; channels
// written by different pipeline steps never disturb each other.
type Transform struct {
	Anchor   *PointChannel
	Position *PointChannel
	Scale    *PointChannel
	Rotation *ScalarChannel
	Opacity  *ScalarChannel
}

// NewTransform returns a transform with Lottie's neutral defaults:
// full opacity, 100% scale, zero position, anchor and rotation.
func NewTransform() *Transform {
	return &Transform{
		Anchor:   NewPointChannel(Point{}),
		Position: NewPointChannel(Point{}),
		Scale:    NewPointChannel(Point{X: 100, Y: 100}),
		Rotation: NewScalarChannel(0),
		Opacity:  NewScalarChannel(100),
	}
}

// ToMap serializes the transform into the Lottie "ks" object.
func (t *Transform) ToMap() map[string]any {
	return map[string]any{
		"a": t.Anchor.ToMap(),
		"p": t.Position.ToMap(),
		"s": t.Scale.ToMap(),
		"r": t.Rotation.ToMap(),
		"o": t.Opacity.ToMap(),
	}
}
