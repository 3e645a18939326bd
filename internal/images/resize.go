// Package images resizes uploaded brand and product images and stores the
// results under generated names.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding
	"io"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoding
)

// Upload rejections.
var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooManyPixels   = errors.New("image dimensions too large")
)

// MaxPixels caps the decoded size of an upload. A few hundred kilobytes of
// PNG can otherwise expand to gigabytes of pixels.
const MaxPixels = 40_000_000

// allowedTypes are the sniffed MIME types accepted for upload.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Size is a target image size in pixels.
type Size struct {
	Width  int
	Height int
}

// Target sizes for stored images.
var (
	BrandSize   = Size{Width: 300, Height: 300}
	ProductSize = Size{Width: 780, Height: 1000}
)

const jpegQuality = 90

// Decode sniffs, size-checks and decodes an uploaded image. The header
// dimensions are checked against MaxPixels before any pixel data is
// allocated.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if mime := http.DetectContentType(data); !allowedTypes[mime] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// Fill stretches the whole of src to exactly size, ignoring its aspect
// ratio. Nothing is cropped.
func Fill(src image.Image, size Size) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	if sb := src.Bounds(); !sb.Empty() {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	}
	return dst
}

// EncodeJPEG writes img as a JPEG.
func EncodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
}
