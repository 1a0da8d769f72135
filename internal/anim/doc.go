// Package anim implements the animation variant family and the registry
// that maps animation type names to variant constructors.
//
// A variant is a pure data-plus-function pair: it carries a fixed total
// duration and writes a deterministic keyframe schedule into a layer's
// transform channels. Variants are instantiated fresh per conversion and
// discarded after one use; they never read or depend on other layers.
//
// The registry is populated once at process start and is read-only
// afterward, so it is safe for unlimited concurrent reads.
package anim
