// Package svgimport turns SVG markup into an animation document.
//
// Two independent entry points exist: [ExtractDimensions] derives the
// canvas size from raw markup text by pattern search with fallback rules,
// and [Import] walks the markup with encoding/xml and produces one shape
// layer per drawable element. Dimension extraction never fails; importing
// fails only when the markup is not interpretable as an SVG document.
package svgimport
