package convert

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/motionforge/svg2lottie/internal/anim"
	"github.com/motionforge/svg2lottie/internal/domain"
	"github.com/motionforge/svg2lottie/internal/svgimport"
)

// Conversion defaults applied by callers when a request leaves parameters
// unset. The converter itself re-validates and never defaults frame rate or
// duration.
const (
	DefaultFrameRate = 30
	DefaultDuration  = 60
)

// dataURLPrefix is stripped from payloads sent as data URLs.
const dataURLPrefix = "data:image/svg+xml;base64,"

// ShakeParams overrides the shake variant's oscillation parameters.
type ShakeParams struct {
	AmplitudeX float64
	AmplitudeY float64
	Loops      int
	Start      int
	End        int
}

// Request describes one conversion. Requests are request-local; a fresh
// variant is instantiated per request and discarded after application.
type Request struct {
	// SVG is the base64-encoded source markup, optionally carrying a
	// data URL prefix.
	SVG string

	// AnimationType names the registered variant. Empty selects the
	// default animation.
	AnimationType string

	// FrameRate is the playback rate in frames per second. Must be positive.
	FrameRate int

	// Duration is the total animation length in frames. Must be positive.
	Duration int

	// Effects configures the complex variant's components. Ignored by
	// other variants.
	Effects map[string]anim.SubEffect

	// Shake overrides the shake variant's parameters. Ignored by other
	// variants.
	Shake *ShakeParams

	// FitToCanvas enables the content-bounds fill-scale heuristic during
	// import.
	FitToCanvas bool
}

// Converter runs the conversion pipeline against a variant registry.
type Converter struct {
	registry *anim.Registry
	log      zerolog.Logger
}

// New creates a converter backed by the given registry.
func New(registry *anim.Registry, log zerolog.Logger) *Converter {
	return &Converter{registry: registry, log: log}
}

// Convert turns one base64-encoded SVG into an animated Lottie document as
// a JSON-compatible nested mapping.
func (c *Converter) Convert(req Request) (map[string]any, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	markup, err := DecodeSVG(req.SVG)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64 svg: %v", domain.ErrInvalidInput, err)
	}

	dims := svgimport.ExtractDimensions(markup)
	c.log.Debug().Int("width", dims.Width).Int("height", dims.Height).Msg("extracted svg dimensions")

	opts := svgimport.DefaultOptions()
	opts.FitToCanvas = req.FitToCanvas
	doc, err := svgimport.Import(markup, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	doc.FrameRate = req.FrameRate
	doc.Width = dims.Width
	doc.Height = dims.Height
	doc.OutPoint = req.Duration

	name := req.AnimationType
	if name == "" {
		name = anim.DefaultType
	}
	variant, err := c.registry.Create(name, req.Duration)
	if err != nil {
		return nil, err
	}
	configureVariant(variant, req)

	out, err := applyAndAssemble(doc, variant, dims, req)
	if err != nil {
		return nil, err
	}

	c.log.Info().
		Str("animation_type", name).
		Int("fps", req.FrameRate).
		Int("duration", req.Duration).
		Int("layers", len(doc.Layers)).
		Msg("converted svg")
	return out, nil
}

// applyAndAssemble is the catch-all boundary for unexpected failures during
// transform application and assembly: neither step returns errors, so a
// panic here is converted into ErrConversion, kept distinct from validation
// failures.
func applyAndAssemble(doc *domain.Document, v anim.Variant, dims domain.Dimensions, req Request) (out map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrConversion, r)
		}
	}()

	ApplyToLayers(doc, v)
	out = Assemble(doc.ToMap(), dims, req.FrameRate, req.Duration)
	return out, nil
}

func validate(req Request) error {
	if strings.TrimSpace(req.SVG) == "" {
		return fmt.Errorf("%w: svg payload must not be empty", domain.ErrInvalidInput)
	}
	if req.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate must be positive", domain.ErrInvalidInput)
	}
	if req.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", domain.ErrInvalidInput)
	}
	return nil
}

// configureVariant fills request-supplied parameters into the variants
// that accept them.
func configureVariant(v anim.Variant, req Request) {
	switch variant := v.(type) {
	case *anim.Complex:
		if req.Effects != nil {
			variant.Effects = req.Effects
		}
	case *anim.Shake:
		if req.Shake != nil {
			variant.AmplitudeX = req.Shake.AmplitudeX
			variant.AmplitudeY = req.Shake.AmplitudeY
			variant.Loops = req.Shake.Loops
			variant.Start = req.Shake.Start
			variant.End = req.Shake.End
		}
	}
}

// DecodeSVG decodes a base64-encoded SVG payload, stripping the data URL
// prefix when present.
func DecodeSVG(payload string) (string, error) {
	payload = strings.TrimSpace(strings.TrimPrefix(payload, dataURLPrefix))
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
