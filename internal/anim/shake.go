package anim

import (
	"math"

	"github.com/motionforge/svg2lottie/internal/domain"
)

// Shake oscillation defaults. Four keyframes complete one loop.
const (
	DefaultShakeAmplitude = 10.0
	DefaultShakeLoops     = 5

	shakeKeyframesPerLoop = 4
)

// Shake oscillates a layer's position around its resting point. The
// oscillation is confined to the [Start, End] frame sub-range and completes
// Loops full cycles, alternating between opposite diagonal offsets of
// (AmplitudeX, AmplitudeY). The schedule is fully deterministic and always
// returns to rest at End. Channels written: position.
type Shake struct {
	duration int

	// AmplitudeX and AmplitudeY are peak offsets in absolute coordinates.
	// Zero values fall back to DefaultShakeAmplitude.
	AmplitudeX float64
	AmplitudeY float64

	// Loops is the number of full oscillation cycles; non-positive values
	// fall back to DefaultShakeLoops.
	Loops int

	// Start and End bound the oscillation. When End is not past Start the
	// oscillation spans the whole duration.
	Start int
	End   int
}

// NewShake creates a shake variant with default amplitude and loop count
// spanning the whole duration.
func NewShake(duration int) Variant {
	return &Shake{duration: duration}
}

func (v *Shake) Name() string  { return TypeShake }
func (v *Shake) Duration() int { return v.duration }

func (v *Shake) Apply(tr *domain.Transform, _ domain.Dimensions) {
	start, end := v.Start, v.End
	if end <= start {
		start, end = 0, v.duration
	}

	ax := v.AmplitudeX
	if ax == 0 {
		ax = DefaultShakeAmplitude
	}
	ay := v.AmplitudeY
	if ay == 0 {
		ay = DefaultShakeAmplitude
	}

	loops := v.Loops
	if loops <= 0 {
		loops = DefaultShakeLoops
	}

	total := loops * shakeKeyframesPerLoop
	span := float64(end - start)
	for i := 0; i <= total; i++ {
		frame := start + int(math.Round(float64(i)*span/float64(total)))
		var value domain.Point
		switch i % shakeKeyframesPerLoop {
		case 1:
			value = domain.Point{X: ax, Y: -ay}
		case 3:
			value = domain.Point{X: -ax, Y: ay}
		}
		tr.Position.AddKeyframe(frame, value)
	}
}
