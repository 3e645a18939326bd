package images

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/donaldgifford/storefront-catalog/internal/metrics"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// Store writes processed images to a filesystem and maps them to URLs
// under a public prefix.
type Store struct {
	fs        afero.Fs
	urlPrefix string
}

// NewStore creates a Store writing into fsys. URLs are urlPrefix joined
// with the generated file name.
func NewStore(fsys afero.Fs, urlPrefix string) *Store {
	return &Store{fs: fsys, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// NewDirStore creates a Store rooted at dir on the OS filesystem,
// creating dir if needed.
func NewDirStore(dir, urlPrefix string) (*Store, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image dir: %w", err)
	}
	return NewStore(afero.NewBasePathFs(osFs, dir), urlPrefix), nil
}

// Save decodes r, resizes it to size and stores it as a JPEG with a
// generated UUID name.
func (s *Store) Save(r io.Reader, size Size) (domain.Image, error) {
	src, err := Decode(r)
	if err != nil {
		return domain.Image{}, err
	}

	id := uuid.NewString()
	name := "/" + id + ".jpg"

	f, err := s.fs.Create(name)
	if err != nil {
		return domain.Image{}, fmt.Errorf("creating %s: %w", name, err)
	}
	if err := EncodeJPEG(f, Fill(src, size)); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(name)
		return domain.Image{}, fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return domain.Image{}, fmt.Errorf("closing %s: %w", name, err)
	}

	metrics.ImagesStoredTotal.WithLabelValues(sizeKind(size)).Inc()

	return domain.Image{ID: id, URL: s.urlPrefix + name}, nil
}

// Delete removes the image behind url. Missing files are not an error.
func (s *Store) Delete(url string) error {
	if url == "" {
		return nil
	}
	name := "/" + path.Base(url)
	if err := s.fs.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", name, err)
	}
	return nil
}

// Handler serves stored images. Mount it under the URL prefix with the
// prefix stripped.
func (s *Store) Handler() http.Handler {
	return http.FileServer(afero.NewHttpFs(s.fs))
}

// URLPrefix returns the public prefix of stored image URLs.
func (s *Store) URLPrefix() string {
	return s.urlPrefix
}

func sizeKind(size Size) string {
	switch size {
	case BrandSize:
		return "brand"
	case ProductSize:
		return "product"
	default:
		return "other"
	}
}
