package image

import (
	"image"

	"golang.org/x/image/draw"
)

// FromStdImage creates an RGBA8 buffer from a standard library image.Image.
// Premultiplied sources are converted to straight alpha.
// Returns ErrInvalidDimensions for an empty image.
func FromStdImage(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, err := NewPixelBuffer(width, height, FormatRGBA8)
	if err != nil {
		return nil, err
	}

	// Fast path: NRGBA already has the buffer's layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*4])
		}
		return buf, nil
	}

	// Everything else goes through draw, which handles premultiplied,
	// paletted, gray and YCbCr sources.
	dst := &image.NRGBA{
		Pix:    buf.data,
		Stride: buf.stride,
		Rect:   image.Rect(0, 0, width, height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)

	return buf, nil
}

// ToStdImage converts the buffer to a *image.NRGBA.
// FormatRGB8 buffers are expanded to opaque RGBA.
func (b *PixelBuffer) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))

	switch b.format {
	case FormatRGBA8:
		for y := range b.height {
			copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
		}

	case FormatRGB8:
		for y := range b.height {
			row := b.RowBytes(y)
			dstStart := y * nrgba.Stride
			for x := range b.width {
				srcOff := x * 3
				dstOff := dstStart + x*4
				nrgba.Pix[dstOff] = row[srcOff]
				nrgba.Pix[dstOff+1] = row[srcOff+1]
				nrgba.Pix[dstOff+2] = row[srcOff+2]
				nrgba.Pix[dstOff+3] = 255
			}
		}
	}

	return nrgba
}
