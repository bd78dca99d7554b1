package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is the JPEG quality used by Save.
const DefaultJPEGQuality = 95

// Encoding is an output file encoding.
type Encoding uint8

const (
	// EncodingPNG writes lossless PNG.
	EncodingPNG Encoding = iota

	// EncodingJPEG writes baseline JPEG. Alpha is dropped.
	EncodingJPEG

	// EncodingBMP writes uncompressed BMP.
	EncodingBMP

	// EncodingTIFF writes deflate-compressed TIFF.
	EncodingTIFF
)

// String returns the canonical file extension without the dot.
func (e Encoding) String() string {
	switch e {
	case EncodingPNG:
		return "png"
	case EncodingJPEG:
		return "jpeg"
	case EncodingBMP:
		return "bmp"
	case EncodingTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// EncodingForPath picks the encoding from the file extension.
func EncodingForPath(path string) (Encoding, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return EncodingPNG, nil
	case ".jpg", ".jpeg":
		return EncodingJPEG, nil
	case ".bmp":
		return EncodingBMP, nil
	case ".tif", ".tiff":
		return EncodingTIFF, nil
	default:
		return 0, fmt.Errorf("image: extension %q: %w", ext, ErrUnsupportedFormat)
	}
}

// Load reads an image file into an RGBA8 buffer. The format is detected
// from the content: PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
// It also returns the detected format name.
func Load(path string) (*PixelBuffer, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an image held in memory.
func LoadFromBytes(data []byte) (*PixelBuffer, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*PixelBuffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}

	buf, err := FromStdImage(img)
	if err != nil {
		return nil, "", err
	}
	return buf, format, nil
}

// Save writes the buffer to path, choosing the encoding from the extension.
func (b *PixelBuffer) Save(path string) error {
	enc, err := EncodingForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.Encode(f, enc); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes the buffer to w in the given encoding.
func (b *PixelBuffer) Encode(w io.Writer, enc Encoding) error {
	img := b.ToStdImage()

	var err error
	switch enc {
	case EncodingPNG:
		err = png.Encode(w, img)
	case EncodingJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case EncodingBMP:
		err = bmp.Encode(w, img)
	case EncodingTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("image: encoding %d: %w", enc, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", enc, err)
	}
	return nil
}

// EncodeToBytes encodes the buffer and returns the bytes.
func (b *PixelBuffer) EncodeToBytes(enc Encoding) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Encode(&buf, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
