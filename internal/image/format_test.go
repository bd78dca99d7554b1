package image

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format   Format
		bpp      int
		channels int
		alpha    bool
		name     string
	}{
		{FormatRGB8, 3, 3, false, "RGB8"},
		{FormatRGBA8, 4, 4, true, "RGBA8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.format.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.alpha)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if !tt.format.IsValid() {
				t.Error("IsValid() = false")
			}
		})
	}
}

func TestFormatInvalid(t *testing.T) {
	f := Format(99)
	if f.IsValid() {
		t.Error("Format(99).IsValid() = true")
	}
	if f.BytesPerPixel() != 0 || f.Channels() != 0 || f.HasAlpha() {
		t.Errorf("Format(99).Info() = %+v, want zero", f.Info())
	}
	if f.String() != "Unknown" {
		t.Errorf("String() = %q, want Unknown", f.String())
	}
}

func TestFormatRowAndImageBytes(t *testing.T) {
	if got := FormatRGB8.RowBytes(10); got != 30 {
		t.Errorf("RGB8.RowBytes(10) = %d, want 30", got)
	}
	if got := FormatRGBA8.ImageBytes(10, 5); got != 200 {
		t.Errorf("RGBA8.ImageBytes(10, 5) = %d, want 200", got)
	}
}
