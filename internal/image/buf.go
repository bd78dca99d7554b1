package image

import (
	"errors"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive,
	// or when two buffers that must match in size do not.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// PixelBuffer is a width×height grid of packed 8-bit RGB or RGBA samples.
//
// Pixel data lives in a contiguous byte slice; rows start every Stride bytes.
// Channel order is R, G, B and, for FormatRGBA8, A.
//
// Thread safety: PixelBuffer is safe for concurrent read access. Writes to
// distinct rows may run concurrently; anything else requires external
// synchronization.
type PixelBuffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewPixelBuffer creates a zeroed buffer with the given dimensions and format.
// Returns an error if dimensions are invalid or format is unknown.
func NewPixelBuffer(width, height int, format Format) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &PixelBuffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying.
// The caller must ensure data remains valid for the lifetime of the buffer.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	// The last row only needs its pixel bytes, not the full stride.
	required := (height-1)*stride + format.RowBytes(width)
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &PixelBuffer{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &PixelBuffer{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// CopyFrom overwrites b with the pixels of src.
// Both buffers must have the same dimensions and format; strides may differ.
func (b *PixelBuffer) CopyFrom(src *PixelBuffer) error {
	if !b.SameShape(src) {
		return ErrInvalidDimensions
	}
	if b.stride == src.stride {
		copy(b.data, src.data)
		return nil
	}
	for y := range b.height {
		copy(b.RowBytes(y), src.RowBytes(y))
	}
	return nil
}

// SameShape reports whether other has the same width, height and format.
func (b *PixelBuffer) SameShape(other *PixelBuffer) bool {
	if other == nil {
		return false
	}
	return b.width == other.width && b.height == other.height && b.format == other.format
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *PixelBuffer) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *PixelBuffer) Format() Format {
	return b.format
}

// Bounds returns the buffer dimensions as (width, height).
func (b *PixelBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *PixelBuffer) Data() []byte {
	return b.data
}

// RowBytes returns the pixel bytes of row y, without stride padding.
// Returns nil if y is out of bounds.
func (b *PixelBuffer) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *PixelBuffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// Pixel returns the channel bytes of pixel (x, y). The slice aliases the
// buffer. Returns nil if coordinates are out of bounds.
func (b *PixelBuffer) Pixel(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.BytesPerPixel()]
}

// RGBA returns the color at (x, y). For FormatRGB8, a is 255.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *PixelBuffer) RGBA(x, y int) (r, g, bl, a uint8) {
	pixel := b.Pixel(x, y)
	if pixel == nil {
		return 0, 0, 0, 0
	}
	if b.format == FormatRGBA8 {
		return pixel[0], pixel[1], pixel[2], pixel[3]
	}
	return pixel[0], pixel[1], pixel[2], 255
}

// SetRGBA sets the color at (x, y). Alpha is ignored for FormatRGB8.
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *PixelBuffer) SetRGBA(x, y int, r, g, bl, a uint8) error {
	pixel := b.Pixel(x, y)
	if pixel == nil {
		return ErrOutOfBounds
	}
	pixel[0] = r
	pixel[1] = g
	pixel[2] = bl
	if b.format == FormatRGBA8 {
		pixel[3] = a
	}
	return nil
}

// Fill sets all pixels to the given color.
func (b *PixelBuffer) Fill(r, g, bl, a uint8) {
	for y := range b.height {
		for x := range b.width {
			_ = b.SetRGBA(x, y, r, g, bl, a)
		}
	}
}

// Clear sets all bytes to zero.
func (b *PixelBuffer) Clear() {
	clear(b.data)
}

// Equal reports whether b and other hold the same pixels.
// Stride padding is not compared.
func (b *PixelBuffer) Equal(other *PixelBuffer) bool {
	if !b.SameShape(other) {
		return false
	}
	for y := range b.height {
		if string(b.RowBytes(y)) != string(other.RowBytes(y)) {
			return false
		}
	}
	return true
}

// ByteSize returns the total size of the pixel data in bytes.
func (b *PixelBuffer) ByteSize() int {
	return len(b.data)
}
