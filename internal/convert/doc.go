// Package convert wires the conversion pipeline: request validation, base64
// decoding, dimension resolution, SVG import, transform application and
// document assembly.
//
// One conversion is one straight-line synchronous call chain. Every
// operation is deterministic and local, so failures are never transient and
// nothing is retried.
package convert
