package domain

// Shape is a drawable item inside a shape layer.
type Shape interface {
	ToMap() map[string]any
}

// Rect is a rectangle shape item, centered at Center.
type Rect struct {
	Center Point
	Size   Point
	Radius float64
}

func (r Rect) ToMap() map[string]any {
	return map[string]any{
		"ty": "rc",
		"p":  map[string]any{"a": 0, "k": r.Center.slice()},
		"s":  map[string]any{"a": 0, "k": r.Size.slice()},
		"r":  map[string]any{"a": 0, "k": r.Radius},
	}
}

// Ellipse is an ellipse shape item, centered at Center. Circles use equal
// width and height.
type Ellipse struct {
	Center Point
	Size   Point
}

func (e Ellipse) ToMap() map[string]any {
	return map[string]any{
		"ty": "el",
		"p":  map[string]any{"a": 0, "k": e.Center.slice()},
		"s":  map[string]any{"a": 0, "k": e.Size.slice()},
	}
}

// Path is a cubic bezier path. InTangents and OutTangents are relative to
// their vertex, matching the Lottie bezier encoding; straight segments use
// zero tangents.
type Path struct {
	Vertices    []Point
	InTangents  []Point
	OutTangents []Point
	Closed      bool
}

func (p Path) ToMap() map[string]any {
	v := make([]any, len(p.Vertices))
	in := make([]any, len(p.Vertices))
	out := make([]any, len(p.Vertices))
	for i := range p.Vertices {
		v[i] = p.Vertices[i].slice()
		in[i] = Point{}.slice()
		out[i] = Point{}.slice()
		if i < len(p.InTangents) {
			in[i] = p.InTangents[i].slice()
		}
		if i < len(p.OutTangents) {
			out[i] = p.OutTangents[i].slice()
		}
	}
	return map[string]any{
		"ty": "sh",
		"ks": map[string]any{
			"a": 0,
			"k": map[string]any{
				"c": p.Closed,
				"v": v,
				"i": in,
				"o": out,
			},
		},
	}
}

// Fill is a solid fill applied to the shapes preceding it in the layer.
// Color components are in the 0..1 range; Opacity is a percentage.
type Fill struct {
	Color   [4]float64
	Opacity float64
}

func (f Fill) ToMap() map[string]any {
	return map[string]any{
		"ty": "fl",
		"c":  map[string]any{"a": 0, "k": f.Color[:]},
		"o":  map[string]any{"a": 0, "k": f.Opacity},
		"r":  1,
	}
}
