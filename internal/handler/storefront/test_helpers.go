package storefront

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/DevAttaKhan/dawn/internal/handler"
	"github.com/jackc/pgx/v5/pgtype"
)

// Helper function to parse UUIDs for test data
func mustParseUUID(s string) pgtype.UUID {
	var uuid pgtype.UUID
	if err := uuid.Scan(s); err != nil {
		panic(err)
	}
	return uuid
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRenderer parses the real templates so handler tests exercise the
// same pages production serves.
func newTestRenderer(t *testing.T) *handler.Renderer {
	t.Helper()
	r, err := handler.NewRenderer("../../../web/templates", discardLogger())
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return r
}

// mockCatalogService implements domain.CatalogService for testing
type mockCatalogService struct {
	listProductsFunc        func(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error)
	getProductDetailFunc    func(ctx context.Context, slug string) (*domain.Product, error)
	featuredProductsFunc    func(ctx context.Context, limit int32) ([]domain.ProductListItem, error)
	listCollectionsFunc     func(ctx context.Context, filter domain.CollectionFilter) (*domain.CollectionPage, error)
	getCollectionFunc       func(ctx context.Context, handle string) (*domain.Collection, error)
	featuredCollectionsFunc func(ctx context.Context, limit int32) ([]domain.Collection, error)
}

func (m *mockCatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error) {
	if m.listProductsFunc != nil {
		return m.listProductsFunc(ctx, filter)
	}
	return &domain.ProductPage{Page: 1, PageSize: 12}, nil
}

func (m *mockCatalogService) GetProductDetail(ctx context.Context, slug string) (*domain.Product, error) {
	if m.getProductDetailFunc != nil {
		return m.getProductDetailFunc(ctx, slug)
	}
	return nil, domain.ErrProductNotFound
}

func (m *mockCatalogService) FeaturedProducts(ctx context.Context, limit int32) ([]domain.ProductListItem, error) {
	if m.featuredProductsFunc != nil {
		return m.featuredProductsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockCatalogService) ListCollections(ctx context.Context, filter domain.CollectionFilter) (*domain.CollectionPage, error) {
	if m.listCollectionsFunc != nil {
		return m.listCollectionsFunc(ctx, filter)
	}
	return &domain.CollectionPage{Page: 1, PageSize: 12}, nil
}

func (m *mockCatalogService) GetCollection(ctx context.Context, handle string) (*domain.Collection, error) {
	if m.getCollectionFunc != nil {
		return m.getCollectionFunc(ctx, handle)
	}
	return nil, domain.ErrCollectionNotFound
}

func (m *mockCatalogService) FeaturedCollections(ctx context.Context, limit int32) ([]domain.Collection, error) {
	if m.featuredCollectionsFunc != nil {
		return m.featuredCollectionsFunc(ctx, limit)
	}
	return nil, nil
}

// mockCartService implements domain.CartService for testing
type mockCartService struct {
	getOrCreateFunc        func(ctx context.Context, sessionID string) (string, error)
	addItemFunc            func(ctx context.Context, sessionID string, item domain.CartItem) (*domain.CartSummary, error)
	updateItemQuantityFunc func(ctx context.Context, sessionID, lineID string, quantity int32) (*domain.CartSummary, error)
	removeItemFunc         func(ctx context.Context, sessionID, lineID string) (*domain.CartSummary, error)
	summaryFunc            func(ctx context.Context, sessionID string) (*domain.CartSummary, error)
	clearFunc              func(ctx context.Context, sessionID string) error
}

func (m *mockCartService) GetOrCreate(ctx context.Context, sessionID string) (string, error) {
	if m.getOrCreateFunc != nil {
		return m.getOrCreateFunc(ctx, sessionID)
	}
	return "test-session", nil
}

func (m *mockCartService) AddItem(ctx context.Context, sessionID string, item domain.CartItem) (*domain.CartSummary, error) {
	if m.addItemFunc != nil {
		return m.addItemFunc(ctx, sessionID, item)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) UpdateItemQuantity(ctx context.Context, sessionID, lineID string, quantity int32) (*domain.CartSummary, error) {
	if m.updateItemQuantityFunc != nil {
		return m.updateItemQuantityFunc(ctx, sessionID, lineID, quantity)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) RemoveItem(ctx context.Context, sessionID, lineID string) (*domain.CartSummary, error) {
	if m.removeItemFunc != nil {
		return m.removeItemFunc(ctx, sessionID, lineID)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, sessionID)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) Clear(ctx context.Context, sessionID string) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx, sessionID)
	}
	return nil
}

// testProduct builds a two-option product with three variants for
// resolution-sensitive handler tests.
func testProduct() *domain.Product {
	colorOpt := mustParseUUID("11111111-0000-0000-0000-000000000001")
	sizeOpt := mustParseUUID("11111111-0000-0000-0000-000000000002")
	red := mustParseUUID("22222222-0000-0000-0000-000000000001")
	black := mustParseUUID("22222222-0000-0000-0000-000000000002")
	small := mustParseUUID("33333333-0000-0000-0000-000000000001")
	medium := mustParseUUID("33333333-0000-0000-0000-000000000002")
	productID := mustParseUUID("44444444-0000-0000-0000-000000000001")

	return &domain.Product{
		ID:             productID,
		Name:           "Small Convertible Flex Bag",
		Slug:           "small-convertible-flex-bag",
		BasePriceCents: 9500,
		Status:         domain.ProductStatusActive,
		Options: []domain.Option{
			{
				ID: colorOpt, ProductID: productID, Name: "Color",
				Values: []domain.OptionValue{
					{ID: red, OptionID: colorOpt, Value: "Red"},
					{ID: black, OptionID: colorOpt, Value: "Black"},
				},
			},
			{
				ID: sizeOpt, ProductID: productID, Name: "Size", Position: 1,
				Values: []domain.OptionValue{
					{ID: small, OptionID: sizeOpt, Value: "S"},
					{ID: medium, OptionID: sizeOpt, Value: "M"},
				},
			},
		},
		Variants: []domain.Variant{
			{
				ID:         mustParseUUID("55555555-0000-0000-0000-000000000001"),
				ProductID:  productID,
				PriceCents: 9500, InventoryQuantity: 2,
				Selections: []domain.VariantSelection{
					{OptionID: colorOpt, ValueID: red},
					{OptionID: sizeOpt, ValueID: small},
				},
			},
			{
				ID:         mustParseUUID("55555555-0000-0000-0000-000000000002"),
				ProductID:  productID,
				PriceCents: 9700, InventoryQuantity: 0, Position: 1,
				Selections: []domain.VariantSelection{
					{OptionID: colorOpt, ValueID: red},
					{OptionID: sizeOpt, ValueID: medium},
				},
			},
			{
				ID:         mustParseUUID("55555555-0000-0000-0000-000000000003"),
				ProductID:  productID,
				PriceCents: 9500, InventoryQuantity: 5, Position: 2,
				Selections: []domain.VariantSelection{
					{OptionID: colorOpt, ValueID: black},
					{OptionID: sizeOpt, ValueID: small},
				},
			},
		},
	}
}
