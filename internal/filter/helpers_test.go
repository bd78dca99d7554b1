package filter

import (
	"testing"

	"github.com/gogpu/fxaa/internal/image"
)

// Test helper functions shared across filter tests.

// newFilled creates a buffer filled with the given color.
func newFilled(t testing.TB, w, h int, format image.Format, r, g, b, a uint8) *image.PixelBuffer {
	t.Helper()
	buf, err := image.NewPixelBuffer(w, h, format)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	buf.Fill(r, g, b, a)
	return buf
}

// centerDot is a 3×3 black RGBA image with a white center pixel.
func centerDot(t testing.TB) *image.PixelBuffer {
	t.Helper()
	buf := newFilled(t, 3, 3, image.FormatRGBA8, 0, 0, 0, 255)
	_ = buf.SetRGBA(1, 1, 255, 255, 255, 255)
	return buf
}

// verticalEdge is a w×h RGBA image, black left of column edgeX, white from it.
func verticalEdge(t testing.TB, w, h, edgeX int) *image.PixelBuffer {
	t.Helper()
	buf := newFilled(t, w, h, image.FormatRGBA8, 0, 0, 0, 255)
	for y := range h {
		for x := edgeX; x < w; x++ {
			_ = buf.SetRGBA(x, y, 255, 255, 255, 255)
		}
	}
	return buf
}

// noise fills a buffer with a deterministic pseudo-random pattern.
func noise(t testing.TB, w, h int, format image.Format, seed uint32) *image.PixelBuffer {
	t.Helper()
	buf, err := image.NewPixelBuffer(w, h, format)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	state := seed
	data := buf.Data()
	for i := range data {
		state = state*1664525 + 1013904223
		data[i] = byte(state >> 24)
	}
	return buf
}

// runFilter runs a full orchestrated filter over a copy of src.
func runFilter(t testing.TB, src *image.PixelBuffer, params Params) *image.PixelBuffer {
	t.Helper()
	scratch, _ := image.NewPixelBuffer(src.Width(), src.Height(), src.Format())
	o := NewOrchestrator(params, nil, 1, nil)
	if err := o.Start(src.Clone(), scratch); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for o.State() == StateRunning {
		if err := o.Step(); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}
	return o.Result()
}

// defaultParams mirrors the library defaults.
func defaultParams() Params {
	return Params{
		Weights:   PerceptualWeights,
		Threshold: 0.05,
		Policy:    WeightedNeighborAverage,
		Passes:    1,
	}
}

// absf32Diff returns |a - b|.
func absf32Diff(a, b float32) float32 {
	return absf32(a - b)
}

// channelNear reports whether got is within tol of want.
func channelNear(got, want uint8, tol int) bool {
	d := int(got) - int(want)
	return d >= -tol && d <= tol
}
