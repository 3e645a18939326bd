package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/storefront-catalog/internal/images"
	"github.com/donaldgifford/storefront-catalog/internal/store"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// validate checks admin form payloads. Field names in messages come from
// the form tag.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "numeric":
			msgs = append(msgs, fe.Field()+" must be a number")
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be a date in %s format", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(msgs, "; ")
}

// bindForm binds and validates an admin form, writing a 400 on failure.
// It returns false when the response has already been written.
func bindForm(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
	}
	if err := validate.Struct(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
	}
	return true, nil
}

// storeStatus maps store sentinels to HTTP status codes.
func storeStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// storeErrorJSON writes err with the status storeStatus picks. Not-found
// and duplicate errors get the short message msg; anything else is
// prefixed with action.
func storeErrorJSON(c echo.Context, err error, action, msg string) error {
	status := storeStatus(err)
	if status == http.StatusInternalServerError {
		return c.JSON(status, ErrorResponse{Error: action + ": " + err.Error()})
	}
	return c.JSON(status, ErrorResponse{Error: msg})
}

var errImageTooLarge = errors.New("image too large")

// ImageUploader saves uploaded multipart images through an images.Store.
type ImageUploader struct {
	images   *images.Store
	maxBytes int64
}

// NewImageUploader creates an ImageUploader. Files larger than maxBytes
// are rejected; 0 disables the check.
func NewImageUploader(s *images.Store, maxBytes int64) *ImageUploader {
	return &ImageUploader{images: s, maxBytes: maxBytes}
}

func (u *ImageUploader) save(fh *multipart.FileHeader, size images.Size) (domain.Image, error) {
	if u.maxBytes > 0 && fh.Size > u.maxBytes {
		return domain.Image{}, fmt.Errorf("%w: %s is %d bytes", errImageTooLarge, fh.Filename, fh.Size)
	}

	f, err := fh.Open()
	if err != nil {
		return domain.Image{}, fmt.Errorf("opening %s: %w", fh.Filename, err)
	}
	defer f.Close()

	return u.images.Save(f, size)
}

// saveAll saves every file, removing already stored ones if any fails.
func (u *ImageUploader) saveAll(files []*multipart.FileHeader, size images.Size) ([]domain.Image, error) {
	out := make([]domain.Image, 0, len(files))
	for _, fh := range files {
		img, err := u.save(fh, size)
		if err != nil {
			u.discard(out...)
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

func (u *ImageUploader) discard(imgs ...domain.Image) {
	for _, img := range imgs {
		_ = u.images.Delete(img.URL)
	}
}

func (u *ImageUploader) remove(url string) error {
	return u.images.Delete(url)
}

// uploadStatus maps image upload errors to HTTP status codes.
func uploadStatus(err error) int {
	switch {
	case errors.Is(err, images.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, errImageTooLarge), errors.Is(err, images.ErrTooManyPixels):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// formFile returns the uploaded file under field, or nil if there is none.
func formFile(c echo.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

// formFiles returns every uploaded file under field.
func formFiles(c echo.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}
