package anim

import "github.com/motionforge/svg2lottie/internal/domain"

// fullScale is the neutral scale percentage.
var fullScale = domain.Point{X: 100, Y: 100}

// FadeIn fades a layer from fully transparent to fully opaque over the
// first 30 frames while pinning scale at 100% for the whole duration.
// Channels written: opacity, scale.
type FadeIn struct {
	duration int
}

// NewFadeIn creates a fade-in variant with the given total duration.
func NewFadeIn(duration int) Variant {
	return &FadeIn{duration: duration}
}

func (v *FadeIn) Name() string  { return TypeFadeIn }
func (v *FadeIn) Duration() int { return v.duration }

func (v *FadeIn) Apply(tr *domain.Transform, _ domain.Dimensions) {
	tr.Opacity.AddKeyframe(0, 0)
	tr.Opacity.AddKeyframe(30, 100)

	tr.Scale.AddKeyframe(0, fullScale)
	tr.Scale.AddKeyframe(30, fullScale)
	tr.Scale.AddKeyframe(v.duration, fullScale)
}

// ScaleUp grows a layer from 50% to 100% over the first 30 frames.
// Channels written: scale.
type ScaleUp struct {
	duration int
}

// NewScaleUp creates a scale-up variant with the given total duration.
func NewScaleUp(duration int) Variant {
	return &ScaleUp{duration: duration}
}

func (v *ScaleUp) Name() string  { return TypeScaleUp }
func (v *ScaleUp) Duration() int { return v.duration }

func (v *ScaleUp) Apply(tr *domain.Transform, _ domain.Dimensions) {
	tr.Scale.AddKeyframe(0, domain.Point{X: 50, Y: 50})
	tr.Scale.AddKeyframe(30, fullScale)
}

// Bounce pulses a layer's scale between 90% and 100% every 15 frames over
// the first 75 frames, then rests at 100% at the variant duration. The
// literal schedule is written regardless of duration. Channels written:
// scale.
type Bounce struct {
	duration int
}

// NewBounce creates a bounce variant with the given total duration.
func NewBounce(duration int) Variant {
	return &Bounce{duration: duration}
}

func (v *Bounce) Name() string  { return TypeBounce }
func (v *Bounce) Duration() int { return v.duration }

func (v *Bounce) Apply(tr *domain.Transform, _ domain.Dimensions) {
	small := domain.Point{X: 90, Y: 90}
	schedule := []domain.PointKeyframe{
		{Frame: 0, Value: small},
		{Frame: 15, Value: fullScale},
		{Frame: 30, Value: small},
		{Frame: 45, Value: fullScale},
		{Frame: 60, Value: small},
		{Frame: 75, Value: fullScale},
	}
	for _, kf := range schedule {
		tr.Scale.AddKeyframe(kf.Frame, kf.Value)
	}
	tr.Scale.AddKeyframe(v.duration, fullScale)
}

// BottomToCenter slides a layer in from twice the canvas height below its
// resting position over the first 30 frames, holding scale at 100%.
// Channels written: position, scale.
type BottomToCenter struct {
	duration int
}

// NewBottomToCenter creates a bottom-to-center variant with the given
// total duration.
func NewBottomToCenter(duration int) Variant {
	return &BottomToCenter{duration: duration}
}

func (v *BottomToCenter) Name() string  { return TypeBottomToCenter }
func (v *BottomToCenter) Duration() int { return v.duration }

func (v *BottomToCenter) Apply(tr *domain.Transform, size domain.Dimensions) {
	start := domain.Point{X: 0, Y: float64(size.Height) * 2}
	tr.Position.AddKeyframe(0, start)
	tr.Position.AddKeyframe(30, domain.Point{})

	tr.Scale.AddKeyframe(0, fullScale)
	tr.Scale.AddKeyframe(30, fullScale)
}

// Rotate spins a layer through one full turn across the whole duration.
// Channels written: rotation.
type Rotate struct {
	duration int
}

// NewRotate creates a rotate variant with the given total duration.
func NewRotate(duration int) Variant {
	return &Rotate{duration: duration}
}

func (v *Rotate) Name() string  { return TypeRotate }
func (v *Rotate) Duration() int { return v.duration }

func (v *Rotate) Apply(tr *domain.Transform, _ domain.Dimensions) {
	tr.Rotation.AddKeyframe(0, 0)
	tr.Rotation.AddKeyframe(v.duration, 360)
}
