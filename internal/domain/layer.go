package domain

// Layer is one element of a document's layer stack. The conversion core
// never creates or destroys layers; it only mutates the capabilities a
// layer chooses to expose.
type Layer interface {
	ToMap() map[string]any
}

// Transformer is the capability of exposing animatable transform channels.
// Layers without it are skipped by the transform applier.
type Transformer interface {
	Transform() *Transform
}

// OutPointSetter is the capability of adjusting a layer's visible duration.
type OutPointSetter interface {
	SetOutPoint(frame int)
}

// ShapeLayer is a vector shape layer (Lottie layer type 4). It exposes both
// the Transformer and OutPointSetter capabilities.
type ShapeLayer struct {
	Name     string
	Index    int
	InPoint  int
	OutPoint int
	Shapes   []Shape

	transform *Transform
}

// NewShapeLayer creates an empty shape layer with a neutral transform.
func NewShapeLayer(name string, index int) *ShapeLayer {
	return &ShapeLayer{
		Name:      name,
		Index:     index,
		transform: NewTransform(),
	}
}

// Transform returns the layer's animatable channels.
func (l *ShapeLayer) Transform() *Transform {
	return l.transform
}

// SetOutPoint extends or shortens the layer's visible duration.
func (l *ShapeLayer) SetOutPoint(frame int) {
	l.OutPoint = frame
}

// AddShape appends a shape item to the layer.
func (l *ShapeLayer) AddShape(s Shape) {
	l.Shapes = append(l.Shapes, s)
}

// ToMap serializes the layer into the Lottie layer form.
func (l *ShapeLayer) ToMap() map[string]any {
	shapes := make([]any, len(l.Shapes))
	for i, s := range l.Shapes {
		shapes[i] = s.ToMap()
	}
	return map[string]any{
		"ty":     4,
		"ind":    l.Index,
		"nm":     l.Name,
		"ip":     l.InPoint,
		"op":     l.OutPoint,
		"st":     0,
		"sr":     1,
		"ks":     l.transform.ToMap(),
		"shapes": shapes,
	}
}
