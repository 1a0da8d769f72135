package anim

import (
	"math"
	"sort"

	"github.com/motionforge/svg2lottie/internal/domain"
)

// SubEffect is one component of a Complex variant. Start and End bound the
// component's schedule; when End is not past Start the component spans the
// whole variant duration. Degrees is only meaningful for the rotate
// component and defaults to a full turn.
type SubEffect struct {
	Start   int     `json:"start" yaml:"start"`
	End     int     `json:"end" yaml:"end"`
	Degrees float64 `json:"degrees,omitempty" yaml:"degrees,omitempty"`
}

// Complex combines named sub-effects, each confined to its own frame range.
// Recognized names are fade_in, scale_up, bounce, bottom_to_center, rotate
// and shake; unrecognized names are ignored, not errors. Components apply
// in sorted-name order so the resulting schedules are deterministic.
type Complex struct {
	duration int

	Effects map[string]SubEffect
}

// NewComplex creates a complex variant with no components. Callers populate
// Effects before applying.
func NewComplex(duration int) Variant {
	return &Complex{duration: duration}
}

func (v *Complex) Name() string  { return TypeComplex }
func (v *Complex) Duration() int { return v.duration }

func (v *Complex) Apply(tr *domain.Transform, size domain.Dimensions) {
	names := make([]string, 0, len(v.Effects))
	for name := range v.Effects {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v.applyComponent(name, v.Effects[name], tr, size)
	}
}

func (v *Complex) applyComponent(name string, e SubEffect, tr *domain.Transform, size domain.Dimensions) {
	start, end := e.Start, e.End
	if end <= start {
		start, end = 0, v.duration
	}

	switch name {
	case TypeFadeIn:
		tr.Opacity.AddKeyframe(start, 0)
		tr.Opacity.AddKeyframe(end, 100)

	case TypeScaleUp:
		tr.Scale.AddKeyframe(start, domain.Point{X: 50, Y: 50})
		tr.Scale.AddKeyframe(end, fullScale)

	case TypeBounce:
		small := domain.Point{X: 90, Y: 90}
		span := float64(end - start)
		for i := 0; i <= 5; i++ {
			frame := start + int(math.Round(float64(i)*span/5))
			value := fullScale
			if i%2 == 0 {
				value = small
			}
			tr.Scale.AddKeyframe(frame, value)
		}

	case TypeBottomToCenter:
		tr.Position.AddKeyframe(start, domain.Point{X: 0, Y: float64(size.Height) * 2})
		tr.Position.AddKeyframe(end, domain.Point{})
		tr.Scale.AddKeyframe(start, fullScale)
		tr.Scale.AddKeyframe(end, fullScale)

	case TypeRotate:
		degrees := e.Degrees
		if degrees == 0 {
			degrees = 360
		}
		tr.Rotation.AddKeyframe(start, 0)
		tr.Rotation.AddKeyframe(end, degrees)

	case TypeShake:
		shake := &Shake{duration: v.duration, Start: start, End: end}
		shake.Apply(tr, size)
	}
}
