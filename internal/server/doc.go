// Package server exposes the converter over HTTP.
//
// Endpoints:
//
//	GET  /health           - service health and host resource usage
//	POST /convert          - convert a base64 SVG to animated Lottie JSON
//	GET  /animation-types  - list registered animation types
//
// All responses, including errors, are JSON. Conversion defaults (animation
// type, fps, duration) come from the active configuration and can be swapped
// at runtime via UpdateConfig.
package server
