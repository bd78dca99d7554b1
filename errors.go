package fxaa

import (
	"errors"

	intImage "github.com/gogpu/fxaa/internal/image"
)

// Errors returned by fxaa.
var (
	// ErrInvalidDimensions is returned when a buffer has non-positive or
	// mismatched dimensions. Images smaller than 3×3 are not an error:
	// they have no interior pixels and are returned unchanged.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrInvalidFormat is returned for an unknown pixel format.
	ErrInvalidFormat = intImage.ErrInvalidFormat

	// ErrInvalidConfig is returned by Config.Validate and everything that
	// accepts a Config: negative pass count, negative or non-finite
	// weights, all-zero weights, a non-finite threshold, an unknown blend
	// policy or a negative worker count.
	ErrInvalidConfig = errors.New("fxaa: invalid config")

	// ErrNilBuffer is returned when a nil buffer or image is passed in.
	ErrNilBuffer = errors.New("fxaa: nil buffer")
)
