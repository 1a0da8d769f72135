package anim

import "github.com/motionforge/svg2lottie/internal/domain"

// Animation type names, in registration order.
const (
	TypeFadeIn         = "fade_in"
	TypeScaleUp        = "scale_up"
	TypeBounce         = "bounce"
	TypeBottomToCenter = "bottom_to_center"
	TypeRotate         = "rotate"
	TypeShake          = "shake"
	TypeComplex        = "complex"
)

// DefaultType is the animation applied when a request names none.
const DefaultType = TypeFadeIn

// Variant is one named animation behavior. Apply writes the variant's
// keyframe schedule into the given transform; it only ever adds keyframes
// to its documented channels and never touches keyframes placed into other
// channels by earlier pipeline steps.
//
// Frame indices beyond the variant's duration are written as-is; no
// clamping or rejection takes place (see Bounce with duration < 75).
type Variant interface {
	// Name returns the registered animation type name.
	Name() string

	// Duration returns the total duration in frames, fixed at construction.
	Duration() int

	// Apply writes the keyframe schedule. size is the resolved canvas size;
	// position values derived from it are absolute coordinates, scale and
	// opacity values are percentages, rotation is in degrees.
	Apply(tr *domain.Transform, size domain.Dimensions)
}
