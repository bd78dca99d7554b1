package fxaa

import "testing"

// verticalEdgeImage is an RGBA image, black on the left half, white on the right.
func verticalEdgeImage(t testing.TB, w, h int) *PixelBuffer {
	t.Helper()
	buf, err := NewPixelBuffer(w, h, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	buf.Fill(0, 0, 0, 255)
	for y := range h {
		for x := w / 2; x < w; x++ {
			_ = buf.SetRGBA(x, y, 255, 255, 255, 255)
		}
	}
	return buf
}

// checkerImage is a w×h image of alternating black and white cells.
func checkerImage(t testing.TB, w, h, cell int, format PixelFormat) *PixelBuffer {
	t.Helper()
	buf, err := NewPixelBuffer(w, h, format)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	for y := range h {
		for x := range w {
			if (x/cell+y/cell)%2 == 0 {
				_ = buf.SetRGBA(x, y, 255, 255, 255, 255)
			} else {
				_ = buf.SetRGBA(x, y, 0, 0, 0, 255)
			}
		}
	}
	return buf
}

// sameBorder reports whether a and b agree on every border pixel.
func sameBorder(a, b *PixelBuffer) bool {
	w, h := a.Bounds()
	for y := range h {
		for x := range w {
			if x != 0 && y != 0 && x != w-1 && y != h-1 {
				continue
			}
			if string(a.Pixel(x, y)) != string(b.Pixel(x, y)) {
				return false
			}
		}
	}
	return true
}
