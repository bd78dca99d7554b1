package filter

// offset is a neighbor displacement.
type offset struct{ dx, dy int }

// mooreNeighbors lists the 8 neighbors, column-major like the kernel loops.
var mooreNeighbors = [8]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// EdgeStrength returns the mean absolute luminance deviation between (x, y)
// and its 8 neighbors.
//
// (x, y) must be an interior coordinate: 1 <= x <= width-2 and
// 1 <= y <= height-2. Border pixels are copied by the caller instead.
func EdgeStrength(m *LuminanceMap, x, y int) float32 {
	w := m.width
	center := m.data[y*w+x]

	var sum float32
	for _, o := range mooreNeighbors {
		sum += absf32(m.data[(y+o.dy)*w+x+o.dx] - center)
	}
	return sum / 8
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
