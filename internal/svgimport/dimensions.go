package svgimport

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/motionforge/svg2lottie/internal/domain"
)

var (
	viewBoxRe = regexp.MustCompile(`(?i)viewBox\s*=\s*["']?([^"']*)["']?`)
	widthRe   = regexp.MustCompile(`(?i)width\s*=\s*["']?(\d+(?:\.\d+)?)["']?`)
	heightRe  = regexp.MustCompile(`(?i)height\s*=\s*["']?(\d+(?:\.\d+)?)["']?`)
)

// ExtractDimensions derives the canvas size from raw markup text.
//
// Rules, in order: a viewBox attribute parsed as four whitespace or comma
// separated numbers, taking the third and fourth truncated toward zero;
// otherwise separate numeric width and height attributes, both required,
// truncated; otherwise the fixed default. Malformed or partial matches fall
// through to the next rule, so extraction never fails a conversion.
func ExtractDimensions(markup string) domain.Dimensions {
	if m := viewBoxRe.FindStringSubmatch(markup); m != nil {
		if dims, ok := parseViewBox(m[1]); ok {
			return dims
		}
	}

	wm := widthRe.FindStringSubmatch(markup)
	hm := heightRe.FindStringSubmatch(markup)
	if wm != nil && hm != nil {
		w, errW := strconv.ParseFloat(wm[1], 64)
		h, errH := strconv.ParseFloat(hm[1], 64)
		if errW == nil && errH == nil {
			return domain.Dimensions{Width: int(w), Height: int(h)}
		}
	}

	return domain.DefaultDimensions()
}

func parseViewBox(value string) (domain.Dimensions, bool) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) < 4 {
		return domain.Dimensions{}, false
	}
	w, errW := strconv.ParseFloat(fields[2], 64)
	h, errH := strconv.ParseFloat(fields[3], 64)
	if errW != nil || errH != nil {
		return domain.Dimensions{}, false
	}
	return domain.Dimensions{Width: int(w), Height: int(h)}, true
}
