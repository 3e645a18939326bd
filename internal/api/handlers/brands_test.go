package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-catalog/internal/api/handlers"
	"github.com/donaldgifford/storefront-catalog/internal/store"
	storeMocks "github.com/donaldgifford/storefront-catalog/internal/store/mocks"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

func newBrandServer(ms *storeMocks.MockStore, u *handlers.ImageUploader) *echo.Echo {
	h := handlers.NewBrandHandler(ms, u, discard)
	return newAdminServer(func(g *echo.Group) { handlers.RegisterBrandRoutes(g, h) })
}

func TestBrandHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns brands",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: "b1", Name: "Nike"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Nike"`,
		},
		{
			name: "empty list",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListBrands(mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListBrands(mock.Anything).Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			u, _ := newUploader(0)

			rec := serve(newBrandServer(ms, u), httptest.NewRequest(http.MethodGet, adminPrefix+"/brands", http.NoBody))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestBrandHandler_Create(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetBrandByName(mock.Anything, "Nike").Return(nil, store.ErrNotFound).Once()
	ms.EXPECT().
		CreateBrand(mock.Anything, mock.MatchedBy(func(b *domain.Brand) bool {
			return b.Name == "Nike" && b.Active && strings.HasPrefix(b.Image, "/static/images/")
		})).
		Run(func(_ context.Context, b *domain.Brand) { b.ID = "b1" }).
		Return(nil).
		Once()

	u, fs := newUploader(1 << 20)
	req := multipartRequest(t, http.MethodPost, adminPrefix+"/brands",
		url.Values{"name": {"  nike 2!! "}, "status": {"Active"}},
		upload{field: "image", name: "logo.png", data: pngBytes(t, 40, 20)},
	)

	rec := serve(newBrandServer(ms, u), req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":"b1"`)
	assert.Len(t, storedFiles(t, fs), 1)
}

func TestBrandHandler_CreateRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fields     url.Values
		files      []upload
		maxBytes   int64
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing name",
			fields:     url.Values{"status": {"Active"}},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "name is required",
		},
		{
			name:       "name without letters",
			fields:     url.Values{"name": {"123 !"}},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "name must contain letters",
		},
		{
			name:   "duplicate name returns existing brand",
			fields: url.Values{"name": {"NIKE"}},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetBrandByName(mock.Anything, "Nike").
					Return(&domain.Brand{ID: "b9", Name: "Nike"}, nil).
					Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"id":"b9"`,
		},
		{
			name:   "image that is not a picture",
			fields: url.Values{"name": {"Puma"}},
			files:  []upload{{field: "image", name: "notes.txt", data: []byte("plain text, not an image")}},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetBrandByName(mock.Anything, "Puma").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "saving image",
		},
		{
			name:     "image too large",
			fields:   url.Values{"name": {"Puma"}},
			files:    []upload{{field: "image", name: "big.png"}},
			maxBytes: 16,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetBrandByName(mock.Anything, "Puma").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:   "image with oversized dimensions",
			fields: url.Values{"name": {"Puma"}},
			files:  []upload{{field: "image", name: "bomb.png", data: pngHeader(t, 50_000, 50_000)}},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetBrandByName(mock.Anything, "Puma").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   "image dimensions too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			u, fs := newUploader(tt.maxBytes)

			files := tt.files
			for i := range files {
				if files[i].data == nil {
					files[i].data = pngBytes(t, 32, 32)
				}
			}

			rec := serve(newBrandServer(ms, u),
				multipartRequest(t, http.MethodPost, adminPrefix+"/brands", tt.fields, files...))
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Empty(t, storedFiles(t, fs))
		})
	}
}

func TestBrandHandler_Update(t *testing.T) {
	t.Parallel()

	u, fs := newUploader(1 << 20)
	require.NoError(t, afero.WriteFile(fs, "/old.jpg", []byte("old"), 0o644))

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetBrand(mock.Anything, "b1").
		Return(&domain.Brand{ID: "b1", Name: "Nike", Image: "/static/images/old.jpg", Active: true}, nil).
		Once()
	ms.EXPECT().GetBrandByName(mock.Anything, "Puma").Return(nil, store.ErrNotFound).Once()
	ms.EXPECT().
		UpdateBrand(mock.Anything, mock.MatchedBy(func(b *domain.Brand) bool {
			return b.ID == "b1" && b.Name == "Puma" && !b.Active &&
				b.Image != "/static/images/old.jpg" && strings.HasPrefix(b.Image, "/static/images/")
		})).
		Return(nil).
		Once()

	req := multipartRequest(t, http.MethodPut, adminPrefix+"/brands/b1",
		url.Values{"name": {"puma"}, "status": {"Inactive"}},
		upload{field: "image", name: "new.png", data: pngBytes(t, 10, 10)},
	)

	rec := serve(newBrandServer(ms, u), req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	files := storedFiles(t, fs)
	require.Len(t, files, 1)
	assert.NotEqual(t, "old.jpg", files[0])
}

func TestBrandHandler_UpdateRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "unknown brand",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetBrand(mock.Anything, "b1").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "brand not found",
		},
		{
			name: "name taken by another brand",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetBrand(mock.Anything, "b1").Return(&domain.Brand{ID: "b1", Name: "Nike"}, nil).Once()
				m.EXPECT().GetBrandByName(mock.Anything, "Puma").Return(&domain.Brand{ID: "b2", Name: "Puma"}, nil).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "brand already exists",
		},
		{
			name: "keeping own name is allowed",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetBrand(mock.Anything, "b1").Return(&domain.Brand{ID: "b1", Name: "Puma"}, nil).Once()
				m.EXPECT().GetBrandByName(mock.Anything, "Puma").Return(&domain.Brand{ID: "b1", Name: "Puma"}, nil).Once()
				m.EXPECT().UpdateBrand(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Puma"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			u, _ := newUploader(0)

			req := multipartRequest(t, http.MethodPut, adminPrefix+"/brands/b1", url.Values{"name": {"Puma"}})
			rec := serve(newBrandServer(ms, u), req)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestBrandHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantFiles  int
	}{
		{
			name: "deletes brand and its image",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetBrand(mock.Anything, "b1").Return(&domain.Brand{ID: "b1", Image: "/static/images/logo.jpg"}, nil).Once()
				m.EXPECT().DeleteBrand(mock.Anything, "b1").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
			wantFiles:  0,
		},
		{
			name: "unknown brand",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetBrand(mock.Anything, "b1").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantFiles:  1,
		},
		{
			name: "store error keeps image",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetBrand(mock.Anything, "b1").Return(&domain.Brand{ID: "b1", Image: "/static/images/logo.jpg"}, nil).Once()
				m.EXPECT().DeleteBrand(mock.Anything, "b1").Return(assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantFiles:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			u, fs := newUploader(0)
			require.NoError(t, afero.WriteFile(fs, "/logo.jpg", []byte("x"), 0o644))

			rec := serve(newBrandServer(ms, u), httptest.NewRequest(http.MethodDelete, adminPrefix+"/brands/b1", http.NoBody))
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Len(t, storedFiles(t, fs), tt.wantFiles)
		})
	}
}

func TestBrandHandler_DeleteImage(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetBrand(mock.Anything, "b1").Return(&domain.Brand{ID: "b1", Name: "Nike", Image: "/static/images/logo.jpg"}, nil).Once()
	ms.EXPECT().
		UpdateBrand(mock.Anything, mock.MatchedBy(func(b *domain.Brand) bool { return b.Image == "" })).
		Return(nil).
		Once()

	u, fs := newUploader(0)
	require.NoError(t, afero.WriteFile(fs, "/logo.jpg", []byte("x"), 0o644))

	rec := serve(newBrandServer(ms, u), httptest.NewRequest(http.MethodDelete, adminPrefix+"/brands/b1/image", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), `"image"`)
	assert.Empty(t, storedFiles(t, fs))
}
