package convert

import (
	"reflect"
	"testing"

	"github.com/motionforge/svg2lottie/internal/anim"
	"github.com/motionforge/svg2lottie/internal/domain"
)

// bareLayer exposes neither the transform nor the out-point capability.
type bareLayer struct{}

func (bareLayer) ToMap() map[string]any { return map[string]any{"ty": 99} }

func TestApplyToLayers_EmptyDocumentIsNoOp(t *testing.T) {
	doc := &domain.Document{Width: 512, Height: 512}
	v, err := anim.DefaultRegistry().Create(anim.TypeFadeIn, 60)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ApplyToLayers(doc, v)

	if len(doc.Layers) != 0 {
		t.Errorf("layer count = %d, want 0 (unchanged)", len(doc.Layers))
	}
}

func TestApplyToLayers_SetsTransformAndOutPoint(t *testing.T) {
	layer := domain.NewShapeLayer("shape", 1)
	doc := &domain.Document{Width: 512, Height: 512, Layers: []domain.Layer{layer}}

	v, err := anim.DefaultRegistry().Create(anim.TypeFadeIn, 90)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	ApplyToLayers(doc, v)

	if !layer.Transform().Opacity.Animated() {
		t.Error("opacity should be animated after fade_in")
	}
	if layer.OutPoint != 90 {
		t.Errorf("OutPoint = %d, want 90", layer.OutPoint)
	}
}

func TestApplyToLayers_SkipsLayersWithoutCapabilities(t *testing.T) {
	doc := &domain.Document{
		Width:  512,
		Height: 512,
		Layers: []domain.Layer{bareLayer{}, domain.NewShapeLayer("shape", 2)},
	}

	v, err := anim.DefaultRegistry().Create(anim.TypeScaleUp, 60)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	ApplyToLayers(doc, v)

	shape := doc.Layers[1].(*domain.ShapeLayer)
	if !shape.Transform().Scale.Animated() {
		t.Error("capable layer should have been animated")
	}
}

// Default dimensions must flow through position math when the document has
// no usable canvas size: 512*2 = 1024.
func TestApplyToLayers_DefaultDimensionFallback(t *testing.T) {
	layer := domain.NewShapeLayer("shape", 1)
	doc := &domain.Document{Width: 0, Height: 0, Layers: []domain.Layer{layer}}

	v, err := anim.DefaultRegistry().Create(anim.TypeBottomToCenter, 60)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	ApplyToLayers(doc, v)

	got := layer.Transform().Position.Keyframes()
	want := []domain.PointKeyframe{
		{Frame: 0, Value: domain.Point{X: 0, Y: 1024}},
		{Frame: 30, Value: domain.Point{}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("position = %v, want %v", got, want)
	}
}
