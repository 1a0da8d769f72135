package svgimport

import (
	"testing"

	"github.com/motionforge/svg2lottie/internal/domain"
)

func TestExtractDimensions(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   domain.Dimensions
	}{
		{
			name:   "viewBox",
			markup: `<svg viewBox='0 0 100 200'/>`,
			want:   domain.Dimensions{Width: 100, Height: 200},
		},
		{
			name:   "viewBox with commas",
			markup: `<svg viewBox="0,0,64,48"/>`,
			want:   domain.Dimensions{Width: 64, Height: 48},
		},
		{
			name:   "viewBox decimals truncate toward zero",
			markup: `<svg viewBox="0 0 100.9 200.2"/>`,
			want:   domain.Dimensions{Width: 100, Height: 200},
		},
		{
			name:   "viewBox wins over width and height",
			markup: `<svg viewBox="0 0 100 200" width="50" height="60"/>`,
			want:   domain.Dimensions{Width: 100, Height: 200},
		},
		{
			name:   "width and height fallback",
			markup: `<svg width='50.5' height='60'/>`,
			want:   domain.Dimensions{Width: 50, Height: 60},
		},
		{
			name:   "width without height falls back to default",
			markup: `<svg width='50'/>`,
			want:   domain.Dimensions{Width: 512, Height: 512},
		},
		{
			name:   "no dimensions",
			markup: `<svg/>`,
			want:   domain.Dimensions{Width: 512, Height: 512},
		},
		{
			name:   "malformed viewBox falls through to attributes",
			markup: `<svg viewBox="0 0 abc def" width="30" height="40"/>`,
			want:   domain.Dimensions{Width: 30, Height: 40},
		},
		{
			name:   "short viewBox falls through to default",
			markup: `<svg viewBox="0 0 100"/>`,
			want:   domain.Dimensions{Width: 512, Height: 512},
		},
		{
			name:   "not markup at all",
			markup: `hello world`,
			want:   domain.Dimensions{Width: 512, Height: 512},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDimensions(tt.markup); got != tt.want {
				t.Errorf("ExtractDimensions() = %v, want %v", got, tt.want)
			}
		})
	}
}
