package images

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  image.Rectangle
		size Size
	}{
		{name: "wide source to square", src: image.Rect(0, 0, 400, 100), size: BrandSize},
		{name: "tall source to square", src: image.Rect(0, 0, 50, 500), size: BrandSize},
		{name: "small source upscaled to portrait", src: image.Rect(0, 0, 20, 20), size: ProductSize},
		{name: "offset bounds", src: image.Rect(10, 10, 110, 60), size: Size{Width: 10, Height: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := image.NewRGBA(tt.src)
			got := Fill(src, tt.size)
			assert.Equal(t, tt.size.Width, got.Bounds().Dx())
			assert.Equal(t, tt.size.Height, got.Bounds().Dy())
		})
	}
}

func TestFill_StretchesWithoutCropping(t *testing.T) {
	t.Parallel()

	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	// 400x100 source whose left quarter is red and the rest blue.
	src := image.NewRGBA(image.Rect(0, 0, 400, 100))
	for x := range 400 {
		for y := range 100 {
			c := blue
			if x < 100 {
				c = red
			}
			src.SetRGBA(x, y, c)
		}
	}

	got := Fill(src, BrandSize)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{name: "left edge kept", x: 10, y: 150, want: red},
		{name: "left edge top row", x: 5, y: 2, want: red},
		{name: "right edge kept", x: 295, y: 150, want: blue},
		{name: "centre", x: 200, y: 150, want: blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, got.RGBAAt(tt.x, tt.y))
		})
	}
}

// pngHeader returns a PNG whose IHDR declares w x h but which carries no
// pixel data.
func pngHeader(t *testing.T, w, h uint32) []byte {
	t.Helper()

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(len(ihdr))))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	require.NoError(t, binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk)))
	return buf.Bytes()
}

func TestDecode_Dimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    func(*testing.T) []byte
		wantErr error
	}{
		{
			name: "ordinary image decodes",
			data: func(t *testing.T) []byte { return pngBytes(t, 64, 48) },
		},
		{
			name:    "huge declared size rejected before decoding",
			data:    func(t *testing.T) []byte { return pngHeader(t, 100_000, 100_000) },
			wantErr: ErrTooManyPixels,
		},
		{
			name:    "just over the pixel cap",
			data:    func(t *testing.T) []byte { return pngHeader(t, 8000, 5001) },
			wantErr: ErrTooManyPixels,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img, err := Decode(bytes.NewReader(tt.data(t)))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
		})
	}
}

func TestDecode_RejectsNonImages(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("definitely not an image"))
	require.ErrorIs(t, err, ErrUnsupportedType)

	_, err = Decode(strings.NewReader(""))
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestStore_SaveAndDelete(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := NewStore(fs, "/static/images/")

	img, err := s.Save(bytes.NewReader(pngBytes(t, 64, 32)), BrandSize)
	require.NoError(t, err)
	require.NotEmpty(t, img.ID)
	assert.Equal(t, "/static/images/"+img.ID+".jpg", img.URL)

	data, err := afero.ReadFile(fs, "/"+img.ID+".jpg")
	require.NoError(t, err)
	decoded, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
	assert.Equal(t, 300, decoded.Bounds().Dy())

	second, err := s.Save(bytes.NewReader(pngBytes(t, 10, 10)), ProductSize)
	require.NoError(t, err)
	assert.NotEqual(t, img.ID, second.ID)

	require.NoError(t, s.Delete(img.URL))
	exists, err := afero.Exists(fs, "/"+img.ID+".jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again, or deleting nothing, is fine.
	require.NoError(t, s.Delete(img.URL))
	require.NoError(t, s.Delete(""))
}

func TestStore_SaveRejectsUnsupported(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := NewStore(fs, "/static/images")

	_, err := s.Save(strings.NewReader("GIF89a not really"), BrandSize)
	require.ErrorIs(t, err, ErrUnsupportedType)

	files, err := afero.ReadDir(fs, "/")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestStore_Handler(t *testing.T) {
	t.Parallel()

	s := NewStore(afero.NewMemMapFs(), "/static/images")
	img, err := s.Save(bytes.NewReader(pngBytes(t, 8, 8)), BrandSize)
	require.NoError(t, err)

	h := http.StripPrefix(s.URLPrefix(), s.Handler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, img.URL, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/images/missing.jpg", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
