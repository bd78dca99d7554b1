package filter

// clampToEdge maps a sample coordinate into [0, size-1].
// Blending uses it so pixels next to the border still see a full 3×3 kernel.
func clampToEdge(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}

// isBorderPixel reports whether (x, y) lies on the outermost row or column.
// Such pixels lack a complete 8-neighborhood and are never blended.
func isBorderPixel(x, y, width, height int) bool {
	return x == 0 || y == 0 || x == width-1 || y == height-1
}
