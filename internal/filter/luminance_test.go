package filter

import (
	"errors"
	"testing"

	"github.com/gogpu/fxaa/internal/image"
)

func TestComputeLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		weights Weights
		want    float32
	}{
		{"black perceptual", 0, 0, 0, PerceptualWeights, 0},
		{"white perceptual", 255, 255, 255, PerceptualWeights, 1},
		{"red perceptual", 255, 0, 0, PerceptualWeights, 0.299},
		{"green perceptual", 0, 255, 0, PerceptualWeights, 0.587},
		{"blue perceptual", 0, 0, 255, PerceptualWeights, 0.114},
		{"white uniform", 255, 255, 255, UniformWeights, 0.999},
		{"gray uniform", 51, 51, 51, UniformWeights, 0.1998},
		{"custom weights", 255, 0, 0, Weights{1, 0, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, format := range []image.Format{image.FormatRGB8, image.FormatRGBA8} {
				buf := newFilled(t, 4, 3, format, tt.r, tt.g, tt.b, 17)
				m, err := ComputeLuminance(buf, tt.weights)
				if err != nil {
					t.Fatalf("ComputeLuminance() error = %v", err)
				}
				if m.Width() != 4 || m.Height() != 3 {
					t.Fatalf("map size = %dx%d, want 4x3", m.Width(), m.Height())
				}
				for i, v := range m.Data() {
					if absf32Diff(v, tt.want) > 1e-5 {
						t.Fatalf("%v: luminance[%d] = %v, want %v", format, i, v, tt.want)
					}
				}
			}
		})
	}
}

func TestComputeLuminanceIgnoresAlpha(t *testing.T) {
	opaque := newFilled(t, 2, 2, image.FormatRGBA8, 10, 200, 30, 255)
	transparent := newFilled(t, 2, 2, image.FormatRGBA8, 10, 200, 30, 0)

	a, _ := ComputeLuminance(opaque, PerceptualWeights)
	b, _ := ComputeLuminance(transparent, PerceptualWeights)

	if a.At(1, 1) != b.At(1, 1) {
		t.Errorf("alpha changed luminance: %v vs %v", a.At(1, 1), b.At(1, 1))
	}
}

func TestComputeLuminancePaddedStride(t *testing.T) {
	data := make([]byte, 2*16)
	buf, err := image.FromRaw(data, 2, 2, image.FormatRGB8, 16)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	_ = buf.SetRGBA(1, 1, 255, 255, 255, 255)

	m, err := ComputeLuminance(buf, PerceptualWeights)
	if err != nil {
		t.Fatalf("ComputeLuminance() error = %v", err)
	}
	if absf32Diff(m.At(1, 1), 1) > 1e-5 || m.At(0, 1) != 0 || m.At(1, 0) != 0 {
		t.Errorf("unexpected map %v", m.Data())
	}
}

func TestLuminanceMapComputeErrors(t *testing.T) {
	m, err := NewLuminanceMap(3, 3)
	if err != nil {
		t.Fatalf("NewLuminanceMap() error = %v", err)
	}

	if err := m.Compute(nil, PerceptualWeights); !errors.Is(err, image.ErrInvalidDimensions) {
		t.Errorf("Compute(nil) error = %v, want ErrInvalidDimensions", err)
	}

	other := newFilled(t, 4, 3, image.FormatRGB8, 0, 0, 0, 0)
	if err := m.Compute(other, PerceptualWeights); !errors.Is(err, image.ErrInvalidDimensions) {
		t.Errorf("Compute(mismatched) error = %v, want ErrInvalidDimensions", err)
	}

	if _, err := NewLuminanceMap(0, 3); !errors.Is(err, image.ErrInvalidDimensions) {
		t.Errorf("NewLuminanceMap(0, 3) error = %v, want ErrInvalidDimensions", err)
	}

	if _, err := ComputeLuminance(nil, PerceptualWeights); !errors.Is(err, image.ErrInvalidDimensions) {
		t.Errorf("ComputeLuminance(nil) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestLuminanceMapRecomputeInPlace(t *testing.T) {
	buf := newFilled(t, 3, 3, image.FormatRGBA8, 0, 0, 0, 255)
	m, _ := ComputeLuminance(buf, PerceptualWeights)
	data := m.Data()

	buf.Fill(255, 255, 255, 255)
	if err := m.Compute(buf, PerceptualWeights); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if &m.Data()[0] != &data[0] {
		t.Error("Compute should reuse the map storage")
	}
	if absf32Diff(m.At(2, 2), 1) > 1e-5 {
		t.Errorf("At(2,2) = %v, want 1", m.At(2, 2))
	}
}
