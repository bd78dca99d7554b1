package parallel

import "testing"

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name      string
		height    int
		n         int
		wantBands int
	}{
		{"single band", 100, 1, 1},
		{"even split", 128, 4, 4},
		{"uneven split", 130, 4, 4},
		{"capped by min rows", 40, 8, 3},
		{"short image", 5, 4, 1},
		{"zero n", 64, 0, 1},
		{"negative n", 64, -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := SplitRows(tt.height, tt.n)
			if len(bands) != tt.wantBands {
				t.Fatalf("len(bands) = %d, want %d", len(bands), tt.wantBands)
			}

			// Bands tile [0, height) in order without gaps or overlaps.
			y := 0
			for i, b := range bands {
				if b.Y0 != y {
					t.Errorf("band %d starts at %d, want %d", i, b.Y0, y)
				}
				if b.Rows() <= 0 {
					t.Errorf("band %d is empty: %+v", i, b)
				}
				y = b.Y1
			}
			if y != tt.height {
				t.Errorf("bands end at %d, want %d", y, tt.height)
			}
		})
	}
}

func TestSplitRowsBalanced(t *testing.T) {
	bands := SplitRows(130, 4)
	for _, b := range bands {
		if r := b.Rows(); r != 32 && r != 33 {
			t.Errorf("band rows = %d, want 32 or 33", r)
		}
	}
}

func TestSplitRowsEmpty(t *testing.T) {
	if bands := SplitRows(0, 4); bands != nil {
		t.Errorf("SplitRows(0, 4) = %v, want nil", bands)
	}
}
