// Package domain contains the core entities and value objects for svg2lottie.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (HTTP, file system, logging) and
// contains only the animation document model and its serialization.
//
// # Entities
//
//   - [Document]: An animation document (canvas, frame rate, layer stack)
//   - [ShapeLayer]: A layer carrying vector shapes and a [Transform]
//   - [Transform]: The five animatable channels of a layer
//   - [ScalarChannel] / [PointChannel]: Keyframe schedules for one property
//
// # Design Principles
//
// Domain entities are:
//   - Request-local; never shared across concurrent conversions
//   - Free of infrastructure dependencies
//   - Serialized through ToMap into the Lottie wire format
//   - Testable without mocks or external systems
package domain
