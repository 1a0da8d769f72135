package convert

import (
	"github.com/motionforge/svg2lottie/internal/anim"
	"github.com/motionforge/svg2lottie/internal/domain"
)

// ApplyToLayers applies the variant to every layer exposing the transform
// capability and sets the visible duration of every layer exposing the
// out-point capability. The canvas size passed to the variant is the
// document's own when both sides are nonzero, the default otherwise.
//
// A document with zero layers is a no-op; the call never errors and never
// creates or destroys layers.
func ApplyToLayers(doc *domain.Document, v anim.Variant) {
	if len(doc.Layers) == 0 {
		return
	}

	size := doc.Size()
	for _, layer := range doc.Layers {
		if tl, ok := layer.(domain.Transformer); ok {
			v.Apply(tl.Transform(), size)
		}
		if ol, ok := layer.(domain.OutPointSetter); ok {
			ol.SetOutPoint(v.Duration())
		}
	}
}
