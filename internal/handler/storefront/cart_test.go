package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DevAttaKhan/dawn/internal/cookie"
	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartHandler(t *testing.T, cartMock *mockCartService, catalogMock *mockCatalogService) *CartHandler {
	t.Helper()
	return NewCartHandler(cartMock, catalogMock, newTestRenderer(t), cookie.NewConfig(false), discardLogger())
}

func postForm(h http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCartHandler_Add(t *testing.T) {
	product := testProduct()
	catalogMock := &mockCatalogService{
		getProductDetailFunc: func(ctx context.Context, slug string) (*domain.Product, error) {
			if slug != product.Slug {
				return nil, domain.ErrProductNotFound
			}
			return product, nil
		},
	}

	colorOpt := domain.UUIDString(product.Options[0].ID)
	sizeOpt := domain.UUIDString(product.Options[1].ID)
	red := domain.UUIDString(product.Options[0].Values[0].ID)
	small := domain.UUIDString(product.Options[1].Values[0].ID)
	medium := domain.UUIDString(product.Options[1].Values[1].ID)

	t.Run("adds resolved variant and sets session cookie", func(t *testing.T) {
		var added domain.CartItem
		cartMock := &mockCartService{
			getOrCreateFunc: func(ctx context.Context, sessionID string) (string, error) {
				return "fresh-session", nil
			},
			addItemFunc: func(ctx context.Context, sessionID string, item domain.CartItem) (*domain.CartSummary, error) {
				assert.Equal(t, "fresh-session", sessionID)
				added = item
				return &domain.CartSummary{Items: []domain.CartItem{item}}, nil
			},
		}

		h := newCartHandler(t, cartMock, catalogMock)

		rec := postForm(h.Add, "/cart/add", url.Values{
			"slug":               {product.Slug},
			"quantity":           {"1"},
			"sel_" + colorOpt:    {colorOpt + ":" + red},
			"sel_" + sizeOpt:     {sizeOpt + ":" + small},
		})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cart", rec.Header().Get("Location"))
		assert.Contains(t, rec.Header().Get("Set-Cookie"), cookie.CartCookieName+"=fresh-session")

		assert.Equal(t, domain.UUIDString(product.Variants[0].ID), added.LineID)
		assert.Equal(t, product.Variants[0].ID, added.VariantID)
		assert.Equal(t, int32(9500), added.UnitPriceCents)
		assert.Equal(t, int32(1), added.Quantity)
	})

	t.Run("quantity clamps to variant inventory", func(t *testing.T) {
		var added domain.CartItem
		cartMock := &mockCartService{
			addItemFunc: func(ctx context.Context, sessionID string, item domain.CartItem) (*domain.CartSummary, error) {
				added = item
				return &domain.CartSummary{}, nil
			},
		}

		h := newCartHandler(t, cartMock, catalogMock)

		rec := postForm(h.Add, "/cart/add", url.Values{
			"slug":            {product.Slug},
			"quantity":        {"99"},
			"sel_" + colorOpt: {colorOpt + ":" + red},
			"sel_" + sizeOpt:  {sizeOpt + ":" + small},
		})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, int32(2), added.Quantity)
	})

	t.Run("sold out combination is rejected", func(t *testing.T) {
		h := newCartHandler(t, &mockCartService{}, catalogMock)

		rec := postForm(h.Add, "/cart/add", url.Values{
			"slug":            {product.Slug},
			"quantity":        {"1"},
			"sel_" + colorOpt: {colorOpt + ":" + red},
			"sel_" + sizeOpt:  {sizeOpt + ":" + medium},
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid quantity is rejected", func(t *testing.T) {
		h := newCartHandler(t, &mockCartService{}, catalogMock)

		rec := postForm(h.Add, "/cart/add", url.Values{
			"slug":     {product.Slug},
			"quantity": {"0"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		h := newCartHandler(t, &mockCartService{}, catalogMock)

		rec := postForm(h.Add, "/cart/add", url.Values{
			"slug":     {"nope"},
			"quantity": {"1"},
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartHandler_View(t *testing.T) {
	cartMock := &mockCartService{
		summaryFunc: func(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
			return &domain.CartSummary{
				Items: []domain.CartItem{
					{
						LineID:         "line-1",
						Name:           "Small Convertible Flex Bag",
						Slug:           "small-convertible-flex-bag",
						UnitPriceCents: 9500,
						Quantity:       2,
					},
				},
				SubtotalCents: 19000,
				ItemCount:     2,
			}, nil
		},
	}

	h := newCartHandler(t, cartMock, &mockCatalogService{})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	h.View(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Small Convertible Flex Bag")
	assert.Contains(t, body, "$190.00")
}

func TestCartHandler_Update(t *testing.T) {
	t.Run("updates quantity", func(t *testing.T) {
		var gotLine string
		var gotQuantity int32
		cartMock := &mockCartService{
			updateItemQuantityFunc: func(ctx context.Context, sessionID, lineID string, quantity int32) (*domain.CartSummary, error) {
				gotLine = lineID
				gotQuantity = quantity
				return &domain.CartSummary{}, nil
			},
		}

		h := newCartHandler(t, cartMock, &mockCatalogService{})

		req := httptest.NewRequest(http.MethodPost, "/cart/update", strings.NewReader(url.Values{
			"line_id":  {"line-1"},
			"quantity": {"3"},
		}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: "sess"})
		rec := httptest.NewRecorder()
		h.Update(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "line-1", gotLine)
		assert.Equal(t, int32(3), gotQuantity)
	})

	t.Run("missing session returns 404", func(t *testing.T) {
		h := newCartHandler(t, &mockCartService{}, &mockCatalogService{})

		rec := postForm(h.Update, "/cart/update", url.Values{
			"line_id":  {"line-1"},
			"quantity": {"3"},
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("negative quantity returns 400", func(t *testing.T) {
		h := newCartHandler(t, &mockCartService{}, &mockCatalogService{})

		req := httptest.NewRequest(http.MethodPost, "/cart/update", strings.NewReader(url.Values{
			"line_id":  {"line-1"},
			"quantity": {"-2"},
		}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: "sess"})
		rec := httptest.NewRecorder()
		h.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
