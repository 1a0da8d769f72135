// Package svg2lottie converts static SVG markup into animated Lottie JSON.
//
// Example usage:
//
//	payload := base64.StdEncoding.EncodeToString([]byte(markup))
//	doc, err := svg2lottie.Convert(svg2lottie.Request{
//	    SVG:           payload,
//	    AnimationType: "bounce",
//	    FrameRate:     30,
//	    Duration:      60,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := json.Marshal(doc)
package svg2lottie

import (
	"github.com/rs/zerolog"

	"github.com/motionforge/svg2lottie/internal/anim"
	"github.com/motionforge/svg2lottie/internal/cliconfig"
	"github.com/motionforge/svg2lottie/internal/convert"
)

// Request describes one conversion. SVG carries the base64-encoded markup,
// optionally prefixed as a data URL.
type Request = convert.Request

// ShakeParams overrides the shake variant's oscillation parameters.
type ShakeParams = convert.ShakeParams

// SubEffect configures one component of the complex animation.
type SubEffect = anim.SubEffect

// Conversion defaults applied when a Request leaves parameters unset.
const (
	DefaultAnimationType = anim.TypeFadeIn
	DefaultFrameRate     = convert.DefaultFrameRate
	DefaultDuration      = convert.DefaultDuration
)

// Convert turns one base64-encoded SVG into an animated Lottie document
// using the default animation registry. The result marshals directly to
// Lottie JSON.
func Convert(req Request) (map[string]any, error) {
	if req.FrameRate == 0 {
		req.FrameRate = DefaultFrameRate
	}
	if req.Duration == 0 {
		req.Duration = DefaultDuration
	}
	return convert.New(anim.DefaultRegistry(), Logger()).Convert(req)
}

// AnimationTypes returns the registered animation type names in
// registration order.
func AnimationTypes() []string {
	return anim.DefaultRegistry().List()
}

// Logger returns the package-level zerolog logger used by the converter.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}
