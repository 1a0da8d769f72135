package anim

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/motionforge/svg2lottie/internal/domain"
)

var testSize = domain.Dimensions{Width: 512, Height: 512}

func scalarSchedule(c *domain.ScalarChannel) []domain.ScalarKeyframe {
	return c.Keyframes()
}

func pointSchedule(c *domain.PointChannel) []domain.PointKeyframe {
	return c.Keyframes()
}

func TestFadeIn_Schedule(t *testing.T) {
	tr := domain.NewTransform()
	NewFadeIn(60).Apply(tr, testSize)

	wantOpacity := []domain.ScalarKeyframe{
		{Frame: 0, Value: 0},
		{Frame: 30, Value: 100},
	}
	if got := scalarSchedule(tr.Opacity); !reflect.DeepEqual(got, wantOpacity) {
		t.Errorf("opacity = %v, want %v", got, wantOpacity)
	}

	wantScale := []domain.PointKeyframe{
		{Frame: 0, Value: domain.Point{X: 100, Y: 100}},
		{Frame: 30, Value: domain.Point{X: 100, Y: 100}},
		{Frame: 60, Value: domain.Point{X: 100, Y: 100}},
	}
	if got := pointSchedule(tr.Scale); !reflect.DeepEqual(got, wantScale) {
		t.Errorf("scale = %v, want %v", got, wantScale)
	}
}

func TestScaleUp_Schedule(t *testing.T) {
	tr := domain.NewTransform()
	NewScaleUp(60).Apply(tr, testSize)

	want := []domain.PointKeyframe{
		{Frame: 0, Value: domain.Point{X: 50, Y: 50}},
		{Frame: 30, Value: domain.Point{X: 100, Y: 100}},
	}
	if got := pointSchedule(tr.Scale); !reflect.DeepEqual(got, want) {
		t.Errorf("scale = %v, want %v", got, want)
	}
}

func TestBounce_Schedule(t *testing.T) {
	tr := domain.NewTransform()
	NewBounce(90).Apply(tr, testSize)

	want := []domain.PointKeyframe{
		{Frame: 0, Value: domain.Point{X: 90, Y: 90}},
		{Frame: 15, Value: domain.Point{X: 100, Y: 100}},
		{Frame: 30, Value: domain.Point{X: 90, Y: 90}},
		{Frame: 45, Value: domain.Point{X: 100, Y: 100}},
		{Frame: 60, Value: domain.Point{X: 90, Y: 90}},
		{Frame: 75, Value: domain.Point{X: 100, Y: 100}},
		{Frame: 90, Value: domain.Point{X: 100, Y: 100}},
	}
	if got := pointSchedule(tr.Scale); !reflect.DeepEqual(got, want) {
		t.Errorf("scale = %v, want %v", got, want)
	}
}

// Frame indices past the variant duration are written as-is, never clamped.
func TestBounce_ShortDurationKeepsLiteralSchedule(t *testing.T) {
	tr := domain.NewTransform()
	NewBounce(45).Apply(tr, testSize)

	got := pointSchedule(tr.Scale)
	last := got[len(got)-1]
	if last.Frame != 75 {
		t.Errorf("last frame = %d, want 75 (literal schedule beyond duration)", last.Frame)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Frame < got[i-1].Frame {
			t.Errorf("frames not non-decreasing: %v", got)
		}
	}
}

func TestBounce_ChannelIsolation(t *testing.T) {
	tr := domain.NewTransform()

	// Keyframes written by another pipeline step must survive untouched.
	tr.Opacity.AddKeyframe(0, 0)
	tr.Opacity.AddKeyframe(10, 100)

	NewBounce(60).Apply(tr, testSize)

	wantOpacity := []domain.ScalarKeyframe{
		{Frame: 0, Value: 0},
		{Frame: 10, Value: 100},
	}
	if got := scalarSchedule(tr.Opacity); !reflect.DeepEqual(got, wantOpacity) {
		t.Errorf("opacity = %v, want %v (untouched)", got, wantOpacity)
	}
	if !tr.Scale.Animated() {
		t.Error("scale should be animated")
	}
}

func TestBottomToCenter_Schedule(t *testing.T) {
	tr := domain.NewTransform()
	NewBottomToCenter(60).Apply(tr, domain.Dimensions{Width: 100, Height: 200})

	wantPosition := []domain.PointKeyframe{
		{Frame: 0, Value: domain.Point{X: 0, Y: 400}},
		{Frame: 30, Value: domain.Point{}},
	}
	if got := pointSchedule(tr.Position); !reflect.DeepEqual(got, wantPosition) {
		t.Errorf("position = %v, want %v", got, wantPosition)
	}

	wantScale := []domain.PointKeyframe{
		{Frame: 0, Value: domain.Point{X: 100, Y: 100}},
		{Frame: 30, Value: domain.Point{X: 100, Y: 100}},
	}
	if got := pointSchedule(tr.Scale); !reflect.DeepEqual(got, wantScale) {
		t.Errorf("scale = %v, want %v", got, wantScale)
	}
}

func TestRotate_Schedule(t *testing.T) {
	tr := domain.NewTransform()
	NewRotate(90).Apply(tr, testSize)

	want := []domain.ScalarKeyframe{
		{Frame: 0, Value: 0},
		{Frame: 90, Value: 360},
	}
	if got := scalarSchedule(tr.Rotation); !reflect.DeepEqual(got, want) {
		t.Errorf("rotation = %v, want %v", got, want)
	}
}

func TestShake_ConfinedToRange(t *testing.T) {
	tr := domain.NewTransform()
	shake := &Shake{duration: 120, Start: 30, End: 90, Loops: 3, AmplitudeX: 8, AmplitudeY: 4}
	shake.Apply(tr, testSize)

	got := pointSchedule(tr.Position)
	wantCount := 3*shakeKeyframesPerLoop + 1
	if len(got) != wantCount {
		t.Fatalf("keyframe count = %d, want %d", len(got), wantCount)
	}

	if got[0].Frame != 30 || got[0].Value != (domain.Point{}) {
		t.Errorf("first keyframe = %v, want rest at frame 30", got[0])
	}
	last := got[len(got)-1]
	if last.Frame != 90 || last.Value != (domain.Point{}) {
		t.Errorf("last keyframe = %v, want rest at frame 90", last)
	}
	for _, kf := range got {
		if kf.Frame < 30 || kf.Frame > 90 {
			t.Errorf("keyframe at frame %d escapes [30,90]", kf.Frame)
		}
		if kf.Value.X > 8 || kf.Value.X < -8 || kf.Value.Y > 4 || kf.Value.Y < -4 {
			t.Errorf("keyframe value %v exceeds amplitude", kf.Value)
		}
	}
}

func TestShake_Deterministic(t *testing.T) {
	first := domain.NewTransform()
	second := domain.NewTransform()
	NewShake(60).Apply(first, testSize)
	NewShake(60).Apply(second, testSize)

	if !reflect.DeepEqual(pointSchedule(first.Position), pointSchedule(second.Position)) {
		t.Error("two applications of the same shake should be identical")
	}
}

func TestComplex_Schedule(t *testing.T) {
	tr := domain.NewTransform()
	v := &Complex{
		duration: 120,
		Effects: map[string]SubEffect{
			TypeRotate: {Start: 10, End: 40, Degrees: 180},
			TypeFadeIn: {Start: 0, End: 20},
			"nonsense": {Start: 0, End: 10},
		},
	}
	v.Apply(tr, testSize)

	wantRotation := []domain.ScalarKeyframe{
		{Frame: 10, Value: 0},
		{Frame: 40, Value: 180},
	}
	if got := scalarSchedule(tr.Rotation); !reflect.DeepEqual(got, wantRotation) {
		t.Errorf("rotation = %v, want %v", got, wantRotation)
	}

	wantOpacity := []domain.ScalarKeyframe{
		{Frame: 0, Value: 0},
		{Frame: 20, Value: 100},
	}
	if got := scalarSchedule(tr.Opacity); !reflect.DeepEqual(got, wantOpacity) {
		t.Errorf("opacity = %v, want %v", got, wantOpacity)
	}

	// The unrecognized component is ignored, not an error, and writes nothing.
	if tr.Scale.Animated() || tr.Position.Animated() || tr.Anchor.Animated() {
		t.Error("unrecognized component should not write any channel")
	}
}

func TestComplex_ZeroRangeSpansDuration(t *testing.T) {
	tr := domain.NewTransform()
	v := &Complex{duration: 80, Effects: map[string]SubEffect{TypeRotate: {}}}
	v.Apply(tr, testSize)

	want := []domain.ScalarKeyframe{
		{Frame: 0, Value: 0},
		{Frame: 80, Value: 360},
	}
	if got := scalarSchedule(tr.Rotation); !reflect.DeepEqual(got, want) {
		t.Errorf("rotation = %v, want %v", got, want)
	}
}

func TestPreset_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	preset := &Preset{
		Name: "intro",
		Effects: map[string]SubEffect{
			TypeFadeIn: {Start: 0, End: 30},
			TypeRotate: {Start: 30, End: 60, Degrees: 90},
		},
	}

	if err := WritePreset(preset, path); err != nil {
		t.Fatalf("WritePreset() error = %v", err)
	}
	got, err := ReadPreset(path)
	if err != nil {
		t.Fatalf("ReadPreset() error = %v", err)
	}
	if !reflect.DeepEqual(got, preset) {
		t.Errorf("ReadPreset() = %+v, want %+v", got, preset)
	}
}
