package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionHandler_List(t *testing.T) {
	catalog := &mockCatalogService{
		listCollectionsFunc: func(ctx context.Context, filter domain.CollectionFilter) (*domain.CollectionPage, error) {
			return &domain.CollectionPage{
				Items: []domain.Collection{
					{ID: mustParseUUID("66666666-0000-0000-0000-000000000001"), Name: "Bags", Handle: "bags"},
					{ID: mustParseUUID("66666666-0000-0000-0000-000000000002"), Name: "Shoes", Handle: "shoes"},
				},
				Total:    2,
				Page:     1,
				PageSize: 12,
			}, nil
		},
	}
	h := NewCollectionHandler(catalog, newTestRenderer(t), discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/collections", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Bags")
	assert.Contains(t, body, "/collections/shoes")
}

func TestCollectionHandler_Detail(t *testing.T) {
	collectionID := mustParseUUID("66666666-0000-0000-0000-000000000001")

	t.Run("scopes the listing to the collection", func(t *testing.T) {
		var gotFilter domain.ProductFilter
		catalog := &mockCatalogService{
			getCollectionFunc: func(ctx context.Context, handle string) (*domain.Collection, error) {
				require.Equal(t, "bags", handle)
				return &domain.Collection{ID: collectionID, Name: "Bags", Handle: "bags"}, nil
			},
			listProductsFunc: func(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error) {
				gotFilter = filter
				return &domain.ProductPage{
					Items: []domain.ProductListItem{
						{Name: "Small Convertible Flex Bag", Slug: "small-convertible-flex-bag", PriceCents: 9500},
					},
					Total:    1,
					Page:     1,
					PageSize: 12,
				}, nil
			},
		}
		h := NewCollectionHandler(catalog, newTestRenderer(t), discardLogger())

		req := httptest.NewRequest(http.MethodGet, "/collections/bags?q=flex", nil)
		req.SetPathValue("handle", "bags")
		rec := httptest.NewRecorder()
		h.Detail(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, collectionID, gotFilter.CollectionID)
		assert.Equal(t, "flex", gotFilter.Search)
		assert.Contains(t, rec.Body.String(), "Small Convertible Flex Bag")
	})

	t.Run("unknown handle returns 404", func(t *testing.T) {
		h := NewCollectionHandler(&mockCatalogService{}, newTestRenderer(t), discardLogger())

		req := httptest.NewRequest(http.MethodGet, "/collections/nope", nil)
		req.SetPathValue("handle", "nope")
		rec := httptest.NewRecorder()
		h.Detail(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHomeHandler(t *testing.T) {
	t.Run("renders featured sections", func(t *testing.T) {
		catalog := &mockCatalogService{
			featuredProductsFunc: func(ctx context.Context, limit int32) ([]domain.ProductListItem, error) {
				assert.Equal(t, int32(4), limit)
				return []domain.ProductListItem{
					{Name: "Court Sneaker", Slug: "court-sneaker", PriceCents: 11900},
				}, nil
			},
			featuredCollectionsFunc: func(ctx context.Context, limit int32) ([]domain.Collection, error) {
				assert.Equal(t, int32(3), limit)
				return []domain.Collection{{Name: "Shoes", Handle: "shoes"}}, nil
			},
		}
		h := NewHomeHandler(catalog, newTestRenderer(t), discardLogger())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Court Sneaker")
		assert.Contains(t, body, "Shoes")
	})

	t.Run("degrades when featured queries fail", func(t *testing.T) {
		catalog := &mockCatalogService{
			featuredProductsFunc: func(ctx context.Context, limit int32) ([]domain.ProductListItem, error) {
				return nil, assert.AnError
			},
		}
		h := NewHomeHandler(catalog, newTestRenderer(t), discardLogger())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
