package domain

// Point is a 2D value used by the position, scale and anchor channels.
// Scale points are percentages; position points are absolute coordinates.
type Point struct {
	X float64
	Y float64
}

// slice returns the Lottie array form of the point.
func (p Point) slice() []float64 {
	return []float64{p.X, p.Y}
}

// ScalarKeyframe pins a single-valued channel to a value at a frame index.
type ScalarKeyframe struct {
	Frame int
	Value float64
}

// PointKeyframe pins a 2D channel to a point at a frame index.
type PointKeyframe struct {
	Frame int
	Value Point
}

// ScalarChannel is a single-valued animatable property (opacity, rotation).
// A channel with no keyframes serializes as a static value.
type ScalarChannel struct {
	static    float64
	keyframes []ScalarKeyframe
}

// NewScalarChannel creates a channel holding the given static value.
func NewScalarChannel(static float64) *ScalarChannel {
	return &ScalarChannel{static: static}
}

// AddKeyframe appends a keyframe to the channel's schedule. Frames within
// one channel are kept non-decreasing; out-of-order inserts are placed
// before later frames, and equal frames keep insertion order.
func (c *ScalarChannel) AddKeyframe(frame int, value float64) {
	i := len(c.keyframes)
	for i > 0 && c.keyframes[i-1].Frame > frame {
		i--
	}
	c.keyframes = append(c.keyframes, ScalarKeyframe{})
	copy(c.keyframes[i+1:], c.keyframes[i:])
	c.keyframes[i] = ScalarKeyframe{Frame: frame, Value: value}
}

// Keyframes returns the channel's schedule in frame order.
func (c *ScalarChannel) Keyframes() []ScalarKeyframe {
	return c.keyframes
}

// SetStatic replaces the channel's static value. It has no effect on the
// serialized form once the channel carries keyframes.
func (c *ScalarChannel) SetStatic(value float64) {
	c.static = value
}

// Animated reports whether the channel carries any keyframes.
func (c *ScalarChannel) Animated() bool {
	return len(c.keyframes) > 0
}

// ToMap serializes the channel into the Lottie property form:
// {"a":0,"k":value} when static, {"a":1,"k":[{"t":frame,"s":[value]}...]}
// when animated.
func (c *ScalarChannel) ToMap() map[string]any {
	if !c.Animated() {
		return map[string]any{"a": 0, "k": c.static}
	}
	ks := make([]any, len(c.keyframes))
	for i, kf := range c.keyframes {
		ks[i] = map[string]any{"t": kf.Frame, "s": []float64{kf.Value}}
	}
	return map[string]any{"a": 1, "k": ks}
}

// PointChannel is a 2D animatable property (position, scale, anchor).
type PointChannel struct {
	static    Point
	keyframes []PointKeyframe
}

// NewPointChannel creates a channel holding the given static point.
func NewPointChannel(static Point) *PointChannel {
	return &PointChannel{static: static}
}

// AddKeyframe appends a keyframe, keeping frames non-decreasing as in
// ScalarChannel.AddKeyframe.
func (c *PointChannel) AddKeyframe(frame int, value Point) {
	i := len(c.keyframes)
	for i > 0 && c.keyframes[i-1].Frame > frame {
		i--
	}
	c.keyframes = append(c.keyframes, PointKeyframe{})
	copy(c.keyframes[i+1:], c.keyframes[i:])
	c.keyframes[i] = PointKeyframe{Frame: frame, Value: value}
}

// Keyframes returns the channel's schedule in frame order.
func (c *PointChannel) Keyframes() []PointKeyframe {
	return c.keyframes
}

// SetStatic replaces the channel's static point. It has no effect on the
// serialized form once the channel carries keyframes.
func (c *PointChannel) SetStatic(value Point) {
	c.static = value
}

// Animated reports whether the channel carries any keyframes.
func (c *PointChannel) Animated() bool {
	return len(c.keyframes) > 0
}

// ToMap serializes the channel into the Lottie property form.
func (c *PointChannel) ToMap() map[string]any {
	if !c.Animated() {
		return map[string]any{"a": 0, "k": c.static.slice()}
	}
	ks := make([]any, len(c.keyframes))
	for i, kf := range c.keyframes {
		ks[i] = map[string]any{"t": kf.Frame, "s": kf.Value.slice()}
	}
	return map[string]any{"a": 1, "k": ks}
}
