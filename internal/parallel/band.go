package parallel

// MinBandRows is the smallest band SplitRows produces (except when the image
// itself is shorter). Smaller bands cost more in scheduling than they save.
const MinBandRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides rows [0, height) into at most n contiguous bands of
// nearly equal size, none smaller than MinBandRows unless height is.
// The bands cover every row exactly once, in order.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if maxBands := (height + MinBandRows - 1) / MinBandRows; n > maxBands {
		n = maxBands
	}

	bands := make([]Band, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		rows := base
		if i < extra {
			rows++
		}
		bands = append(bands, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return bands
}
