package convert

import "github.com/motionforge/svg2lottie/internal/domain"

// Generator is the provenance string carried in the output's meta block.
const Generator = "svg2lottie"

// Assemble merges the computed metadata into the document's serialized
// form. Exactly five top-level keys plus the meta sub-object are written:
// w, h, ip (always 0), op and fr. They are last-writer-wins: pre-existing
// values under the same keys in the base serialization are discarded in
// favor of the passed arguments. All other keys, layers included, pass
// through untouched.
func Assemble(serialized map[string]any, dims domain.Dimensions, frameRate, duration int) map[string]any {
	serialized["w"] = dims.Width
	serialized["h"] = dims.Height
	serialized["ip"] = 0
	serialized["op"] = duration
	serialized["fr"] = frameRate
	serialized["meta"] = map[string]any{
		"g":  Generator,
		"a":  "",
		"k":  "",
		"d":  "",
		"tc": "",
	}
	return serialized
}
