package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent error conditions in the svg2lottie domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidInput is returned for invalid request parameters: an empty
	// SVG payload, a non-positive frame rate or duration, an undecodable
	// base64 string, or an unknown animation type.
	ErrInvalidInput = errors.New("svg2lottie: invalid input")

	// ErrParse is returned when the SVG importer cannot interpret the
	// source markup.
	ErrParse = errors.New("svg2lottie: svg parsing failed")

	// ErrConversion wraps any unexpected failure during transform
	// application or document assembly. It is kept distinct from
	// ErrInvalidInput so callers can map the two to different response
	// semantics.
	ErrConversion = errors.New("svg2lottie: conversion failed")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("svg2lottie: invalid configuration")
)

// UnknownVariantError is returned by the animation registry when an
// animation type name is not registered. Known holds every registered name
// in registration order so callers can self-correct.
type UnknownVariantError struct {
	Name  string
	Known []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown animation type %q. Available: %s", e.Name, strings.Join(e.Known, ", "))
}

// Is reports unknown-variant failures as input validation errors, so
// errors.Is(err, ErrInvalidInput) holds.
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrInvalidInput
}
