package svgimport

import (
	"strconv"
	"strings"

	"github.com/motionforge/svg2lottie/internal/domain"
)

var namedColors = map[string][3]float64{
	"black":   {0, 0, 0},
	"white":   {1, 1, 1},
	"red":     {1, 0, 0},
	"green":   {0, 0.5, 0},
	"lime":    {0, 1, 0},
	"blue":    {0, 0, 1},
	"yellow":  {1, 1, 0},
	"cyan":    {0, 1, 1},
	"magenta": {1, 0, 1},
	"orange":  {1, 0.647, 0},
	"purple":  {0.5, 0, 0.5},
	"gray":    {0.5, 0.5, 0.5},
	"grey":    {0.5, 0.5, 0.5},
}

// parseFill converts an SVG fill attribute into a fill shape. The second
// return value is false for fill="none". Unrecognized paints fall back to
// black, the SVG default.
func parseFill(value string) (domain.Fill, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "none" {
		return domain.Fill{}, false
	}
	if c, ok := parseHexColor(v); ok {
		return domain.Fill{Color: c, Opacity: 100}, true
	}
	if rgb, ok := namedColors[v]; ok {
		return domain.Fill{Color: [4]float64{rgb[0], rgb[1], rgb[2], 1}, Opacity: 100}, true
	}
	return domain.Fill{Color: [4]float64{0, 0, 0, 1}, Opacity: 100}, true
}

func parseHexColor(s string) ([4]float64, bool) {
	if !strings.HasPrefix(s, "#") {
		return [4]float64{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return [4]float64{}, false
	}
	var c [4]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return [4]float64{}, false
		}
		c[i] = float64(v) / 255
	}
	c[3] = 1
	return c, true
}
