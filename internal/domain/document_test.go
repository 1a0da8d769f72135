package domain

import "testing"

func TestDocument_Size(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   Dimensions
	}{
		{
			name:   "own dimensions",
			width:  100,
			height: 200,
			want:   Dimensions{Width: 100, Height: 200},
		},
		{
			name: "zero falls back to default",
			want: Dimensions{Width: 512, Height: 512},
		},
		{
			name:   "partial falls back to default",
			width:  100,
			height: 0,
			want:   Dimensions{Width: 512, Height: 512},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Width: tt.width, Height: tt.height}
			if got := doc.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDocument_ToMap_EmptyLayers(t *testing.T) {
	doc := &Document{Name: "empty", Width: 512, Height: 512, FrameRate: 30, OutPoint: 60}
	m := doc.ToMap()
	layers, ok := m["layers"].([]any)
	if !ok {
		t.Fatalf(`ToMap()["layers"] = %T, want []any`, m["layers"])
	}
	if len(layers) != 0 {
		t.Errorf("layers length = %d, want 0", len(layers))
	}
	if m["ip"] != 0 {
		t.Errorf(`ToMap()["ip"] = %v, want 0`, m["ip"])
	}
}

func TestShapeLayer_Capabilities(t *testing.T) {
	layer := NewShapeLayer("shape", 1)

	var l Layer = layer
	if _, ok := l.(Transformer); !ok {
		t.Error("ShapeLayer should expose the Transformer capability")
	}
	if _, ok := l.(OutPointSetter); !ok {
		t.Error("ShapeLayer should expose the OutPointSetter capability")
	}

	layer.SetOutPoint(90)
	if layer.OutPoint != 90 {
		t.Errorf("OutPoint = %d, want 90", layer.OutPoint)
	}
}

func TestShapeLayer_ToMap(t *testing.T) {
	layer := NewShapeLayer("circle", 1)
	layer.AddShape(Ellipse{Center: Point{X: 50, Y: 50}, Size: Point{X: 60, Y: 60}})
	layer.AddShape(Fill{Color: [4]float64{0.2, 0.45, 0.86, 1}, Opacity: 100})
	layer.SetOutPoint(60)

	m := layer.ToMap()
	if m["ty"] != 4 {
		t.Errorf(`ToMap()["ty"] = %v, want 4`, m["ty"])
	}
	shapes, ok := m["shapes"].([]any)
	if !ok || len(shapes) != 2 {
		t.Fatalf(`ToMap()["shapes"] = %v, want 2 items`, m["shapes"])
	}
	el := shapes[0].(map[string]any)
	if el["ty"] != "el" {
		t.Errorf(`shape ty = %v, want "el"`, el["ty"])
	}
	if m["op"] != 60 {
		t.Errorf(`ToMap()["op"] = %v, want 60`, m["op"])
	}
}
