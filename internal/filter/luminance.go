package filter

import (
	"fmt"

	"github.com/gogpu/fxaa/internal/image"
)

// Weights are the red, green and blue coefficients of the luminance sum.
type Weights [3]float32

// Luminance weight presets.
var (
	// PerceptualWeights are the ITU-R BT.601 luma coefficients.
	PerceptualWeights = Weights{0.299, 0.587, 0.114}

	// UniformWeights treat all three channels equally.
	UniformWeights = Weights{0.333, 0.333, 0.333}
)

// LuminanceMap holds one luminance scalar per pixel of a buffer snapshot.
// It is only valid for the buffer state it was computed from.
type LuminanceMap struct {
	width  int
	height int
	data   []float32
}

// NewLuminanceMap allocates a zeroed map.
func NewLuminanceMap(width, height int) (*LuminanceMap, error) {
	if width <= 0 || height <= 0 {
		return nil, image.ErrInvalidDimensions
	}
	return &LuminanceMap{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}, nil
}

// ComputeLuminance builds a new map for buf.
func ComputeLuminance(buf *image.PixelBuffer, w Weights) (*LuminanceMap, error) {
	if buf == nil {
		return nil, fmt.Errorf("filter: luminance of nil buffer: %w", image.ErrInvalidDimensions)
	}
	m, err := NewLuminanceMap(buf.Width(), buf.Height())
	if err != nil {
		return nil, err
	}
	if err := m.Compute(buf, w); err != nil {
		return nil, err
	}
	return m, nil
}

// Compute overwrites m with the luminance of buf.
// Each entry is (w[0]*R + w[1]*G + w[2]*B) / 255.
func (m *LuminanceMap) Compute(buf *image.PixelBuffer, w Weights) error {
	if buf == nil || buf.Width() != m.width || buf.Height() != m.height {
		return fmt.Errorf("filter: luminance map is %dx%d: %w", m.width, m.height, image.ErrInvalidDimensions)
	}

	bpp := buf.Format().BytesPerPixel()
	for y := range m.height {
		row := buf.RowBytes(y)
		lum := m.data[y*m.width : (y+1)*m.width]
		for x := range lum {
			p := row[x*bpp:]
			lum[x] = (w[0]*float32(p[0]) + w[1]*float32(p[1]) + w[2]*float32(p[2])) / 255
		}
	}
	return nil
}

// At returns the luminance at (x, y). Coordinates must be in bounds.
func (m *LuminanceMap) At(x, y int) float32 {
	return m.data[y*m.width+x]
}

// Width returns the map width.
func (m *LuminanceMap) Width() int { return m.width }

// Height returns the map height.
func (m *LuminanceMap) Height() int { return m.height }

// Data returns the row-major luminance values.
func (m *LuminanceMap) Data() []float32 { return m.data }
