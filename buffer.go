package fxaa

import (
	"image"

	intImage "github.com/gogpu/fxaa/internal/image"
)

// PixelBuffer is a width×height grid of 8-bit RGB or RGBA samples.
// It is an alias for the internal buffer type.
type PixelBuffer = intImage.PixelBuffer

// PixelFormat represents a pixel storage format.
type PixelFormat = intImage.Format

// Pixel formats.
const (
	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8 = intImage.FormatRGB8

	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 bytes per pixel).
	// Alpha is blended like the color channels.
	FormatRGBA8 = intImage.FormatRGBA8
)

// NewPixelBuffer creates a zeroed buffer.
func NewPixelBuffer(width, height int, format PixelFormat) (*PixelBuffer, error) {
	return intImage.NewPixelBuffer(width, height, format)
}

// PixelBufferFromRaw wraps caller-owned pixel data without copying.
// Rows start every stride bytes; stride must be at least
// width*format.BytesPerPixel().
func PixelBufferFromRaw(data []byte, width, height int, format PixelFormat, stride int) (*PixelBuffer, error) {
	return intImage.FromRaw(data, width, height, format, stride)
}

// FromImage copies any image.Image into a new RGBA8 buffer.
func FromImage(img image.Image) (*PixelBuffer, error) {
	if img == nil {
		return nil, ErrNilBuffer
	}
	return intImage.FromStdImage(img)
}
