package svgimport

import "github.com/motionforge/svg2lottie/internal/domain"

// ContentBounds is the assumed content bounding box used to compute the
// fill-to-canvas scale factor.
//
// This is a heuristic carried over from the reference pipeline: every
// shape-bearing layer is assumed to cover the same fixed region regardless
// of its actual geometry, which can misscale real content. It is kept
// configurable rather than silently corrected.
type ContentBounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// DefaultContentBounds returns the (0,0)-(100,100) box assumed by the
// reference pipeline.
func DefaultContentBounds() ContentBounds {
	return ContentBounds{MaxX: 100, MaxY: 100}
}

// FillScale returns the percentage scale that stretches the assumed content
// box to the given canvas. Degenerate boxes scale by 100%.
func (b ContentBounds) FillScale(size domain.Dimensions) domain.Point {
	w := b.MaxX - b.MinX
	h := b.MaxY - b.MinY
	if w <= 0 || h <= 0 {
		return domain.Point{X: 100, Y: 100}
	}
	return domain.Point{
		X: float64(size.Width) / w * 100,
		Y: float64(size.Height) / h * 100,
	}
}
