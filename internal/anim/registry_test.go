package anim

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/motionforge/svg2lottie/internal/domain"
)

func TestDefaultRegistry_List(t *testing.T) {
	got := DefaultRegistry().List()
	want := []string{
		TypeFadeIn, TypeScaleUp, TypeBounce, TypeBottomToCenter,
		TypeRotate, TypeShake, TypeComplex,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRegistry_Create_Unknown(t *testing.T) {
	_, err := DefaultRegistry().Create("nonexistent", 60)
	if err == nil {
		t.Fatal("Create(nonexistent) should fail")
	}

	var unknown *domain.UnknownVariantError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *domain.UnknownVariantError", err)
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Error("unknown variant should satisfy errors.Is(err, ErrInvalidInput)")
	}
	for _, name := range DefaultRegistry().List() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error message %q should list %q", err.Error(), name)
		}
	}
}

func TestRegistry_Register_ReplaceKeepsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("a", NewFadeIn)
	r.Register("b", NewScaleUp)
	r.Register("a", NewBounce)

	if got, want := r.List(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	v, err := r.Create("a", 60)
	if err != nil {
		t.Fatalf("Create(a) error = %v", err)
	}
	if _, ok := v.(*Bounce); !ok {
		t.Errorf("Create(a) = %T, want *Bounce (replaced constructor)", v)
	}
}

// writtenChannels reports which channels a variant animated on a fresh
// transform.
func writtenChannels(tr *domain.Transform) map[string]bool {
	return map[string]bool{
		"position": tr.Position.Animated(),
		"scale":    tr.Scale.Animated(),
		"rotation": tr.Rotation.Animated(),
		"opacity":  tr.Opacity.Animated(),
		"anchor":   tr.Anchor.Animated(),
	}
}

func TestDefaultRegistry_AllVariantsWriteDocumentedChannels(t *testing.T) {
	documented := map[string][]string{
		TypeFadeIn:         {"opacity", "scale"},
		TypeScaleUp:        {"scale"},
		TypeBounce:         {"scale"},
		TypeBottomToCenter: {"position", "scale"},
		TypeRotate:         {"rotation"},
		TypeShake:          {"position"},
		TypeComplex:        {}, // no components configured
	}

	sizes := []domain.Dimensions{
		{Width: 512, Height: 512},
		{Width: 100, Height: 200},
		{Width: 1, Height: 1},
	}
	durations := []int{1, 60, 90}

	for _, name := range DefaultRegistry().List() {
		for _, d := range durations {
			for _, size := range sizes {
				v, err := DefaultRegistry().Create(name, d)
				if err != nil {
					t.Fatalf("Create(%s, %d) error = %v", name, d, err)
				}
				if v.Duration() != d {
					t.Errorf("%s Duration() = %d, want %d", name, v.Duration(), d)
				}
				if v.Name() != name {
					t.Errorf("variant Name() = %q, want %q", v.Name(), name)
				}

				tr := domain.NewTransform()
				v.Apply(tr, size)

				want := map[string]bool{}
				for _, ch := range documented[name] {
					want[ch] = true
				}
				for ch, animated := range writtenChannels(tr) {
					if animated != want[ch] {
						t.Errorf("%s(d=%d, size=%v) channel %s animated = %v, want %v",
							name, d, size, ch, animated, want[ch])
					}
				}
			}
		}
	}
}
