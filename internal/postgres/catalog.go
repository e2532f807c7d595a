package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/DevAttaKhan/dawn/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	defaultPageSize int32 = 12
	maxPageSize     int32 = 60
)

// CatalogStore implements domain.CatalogService using PostgreSQL. Product
// aggregates are always loaded completely (options with values, variants
// with selections, images) before resolution is attempted.
type CatalogStore struct {
	repo   repository.Querier
	logger *slog.Logger
}

// Compile-time check that CatalogStore implements domain.CatalogService.
var _ domain.CatalogService = (*CatalogStore)(nil)

// NewCatalogStore creates a new PostgreSQL-backed catalog store.
func NewCatalogStore(repo repository.Querier, logger *slog.Logger) *CatalogStore {
	return &CatalogStore{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts returns active products matching the given filters.
func (s *CatalogStore) ListProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error) {
	page, pageSize := normalizePaging(filter.Page, filter.PageSize)

	params := repository.ListActiveProductsParams{
		Search:        textFrom(filter.Search),
		Availability:  availabilityFrom(filter.Availability),
		PriceMinCents: filter.PriceMinCents,
		PriceMaxCents: filter.PriceMaxCents,
		CollectionID:  filter.CollectionID,
		SortKey:       string(filter.Sort),
		Limit:         pageSize,
		Offset:        (page - 1) * pageSize,
	}

	rows, err := s.repo.ListActiveProducts(ctx, params)
	if err != nil {
		return nil, domain.Internal(err, "catalog.list", "failed to list products")
	}

	total, err := s.repo.CountActiveProducts(ctx, repository.CountActiveProductsParams{
		Search:        params.Search,
		Availability:  params.Availability,
		PriceMinCents: params.PriceMinCents,
		PriceMaxCents: params.PriceMaxCents,
		CollectionID:  params.CollectionID,
	})
	if err != nil {
		return nil, domain.Internal(err, "catalog.list", "failed to count products")
	}

	items := make([]domain.ProductListItem, len(rows))
	for i, row := range rows {
		items[i] = listItemFromRow(row)
	}

	return &domain.ProductPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetProductDetail retrieves a full product aggregate by slug.
func (s *CatalogStore) GetProductDetail(ctx context.Context, slug string) (*domain.Product, error) {
	row, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, "catalog.get", "failed to get product by slug")
	}

	product := &domain.Product{
		ID:                row.ID,
		Name:              row.Name,
		Slug:              row.Slug,
		Description:       row.Description,
		BasePriceCents:    row.BasePriceCents,
		SalePriceCents:    row.SalePriceCents,
		InventoryQuantity: row.InventoryQuantity,
		Status:            domain.ProductStatus(row.Status),
		SortOrder:         row.SortOrder,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}

	options, err := s.repo.GetProductOptions(ctx, row.ID)
	if err != nil {
		return nil, domain.Internal(err, "catalog.get", "failed to get product options")
	}

	values, err := s.repo.GetProductOptionValues(ctx, row.ID)
	if err != nil {
		return nil, domain.Internal(err, "catalog.get", "failed to get option values")
	}

	valuesByOption := make(map[pgtype.UUID][]domain.OptionValue, len(options))
	for _, v := range values {
		valuesByOption[v.OptionID] = append(valuesByOption[v.OptionID], domain.OptionValue{
			ID:       v.ID,
			OptionID: v.OptionID,
			Value:    v.Value,
			Position: v.Position,
		})
	}

	product.Options = make([]domain.Option, len(options))
	for i, o := range options {
		product.Options[i] = domain.Option{
			ID:        o.ID,
			ProductID: o.ProductID,
			Name:      o.Name,
			Position:  o.Position,
			Values:    valuesByOption[o.ID],
		}
	}

	variants, err := s.repo.GetProductVariants(ctx, row.ID)
	if err != nil {
		return nil, domain.Internal(err, "catalog.get", "failed to get product variants")
	}

	selections, err := s.repo.GetProductVariantSelections(ctx, row.ID)
	if err != nil {
		return nil, domain.Internal(err, "catalog.get", "failed to get variant selections")
	}

	selectionsByVariant := make(map[pgtype.UUID][]domain.VariantSelection, len(variants))
	for _, sel := range selections {
		selectionsByVariant[sel.VariantID] = append(selectionsByVariant[sel.VariantID], domain.VariantSelection{
			OptionID: sel.OptionID,
			ValueID:  sel.ValueID,
		})
	}

	product.Variants = make([]domain.Variant, len(variants))
	for i, v := range variants {
		product.Variants[i] = domain.Variant{
			ID:                  v.ID,
			ProductID:           v.ProductID,
			SKU:                 v.Sku,
			PriceCents:          v.PriceCents,
			CompareAtPriceCents: v.CompareAtPriceCents,
			InventoryQuantity:   v.InventoryQuantity,
			Position:            v.Position,
			Selections:          selectionsByVariant[v.ID],
		}
	}

	images, err := s.repo.GetProductImages(ctx, row.ID)
	if err != nil {
		return nil, domain.Internal(err, "catalog.get", "failed to get product images")
	}

	product.Images = make([]domain.ProductImage, len(images))
	for i, img := range images {
		product.Images[i] = domain.ProductImage{
			ID:        img.ID,
			ProductID: img.ProductID,
			URL:       img.Url,
			AltText:   img.AltText,
			SortOrder: img.SortOrder,
			IsPrimary: img.IsPrimary,
		}
	}

	// Integrity problems are logged, not raised: the resolver degrades to
	// non-match over malformed aggregates.
	if verr := domain.ValidateProduct(product); verr != nil {
		s.logger.Warn("catalog data failed validation",
			"slug", product.Slug,
			"fields", domain.GetValidationFields(verr),
		)
	}

	return product, nil
}

// FeaturedProducts returns the first products in featured order.
func (s *CatalogStore) FeaturedProducts(ctx context.Context, limit int32) ([]domain.ProductListItem, error) {
	if limit <= 0 {
		limit = 4
	}

	rows, err := s.repo.ListActiveProducts(ctx, repository.ListActiveProductsParams{
		SortKey: string(domain.SortFeatured),
		Limit:   limit,
	})
	if err != nil {
		return nil, domain.Internal(err, "catalog.featured", "failed to list featured products")
	}

	items := make([]domain.ProductListItem, len(rows))
	for i, row := range rows {
		items[i] = listItemFromRow(row)
	}
	return items, nil
}

// ListCollections returns collections matching the given filters.
func (s *CatalogStore) ListCollections(ctx context.Context, filter domain.CollectionFilter) (*domain.CollectionPage, error) {
	page, pageSize := normalizePaging(filter.Page, filter.PageSize)

	rows, err := s.repo.ListCollections(ctx, repository.ListCollectionsParams{
		Search:  textFrom(filter.Search),
		SortKey: string(filter.Sort),
		Limit:   pageSize,
		Offset:  (page - 1) * pageSize,
	})
	if err != nil {
		return nil, domain.Internal(err, "collection.list", "failed to list collections")
	}

	total, err := s.repo.CountCollections(ctx, textFrom(filter.Search))
	if err != nil {
		return nil, domain.Internal(err, "collection.list", "failed to count collections")
	}

	items := make([]domain.Collection, len(rows))
	for i, row := range rows {
		items[i] = collectionFromRow(row)
	}

	return &domain.CollectionPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetCollection retrieves a collection by handle.
func (s *CatalogStore) GetCollection(ctx context.Context, handle string) (*domain.Collection, error) {
	row, err := s.repo.GetCollectionByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, domain.Internal(err, "collection.get", "failed to get collection by handle")
	}

	c := collectionFromRow(row)
	return &c, nil
}

// FeaturedCollections returns the first collections in featured order.
func (s *CatalogStore) FeaturedCollections(ctx context.Context, limit int32) ([]domain.Collection, error) {
	if limit <= 0 {
		limit = 3
	}

	rows, err := s.repo.ListCollections(ctx, repository.ListCollectionsParams{
		SortKey: string(domain.SortFeatured),
		Limit:   limit,
	})
	if err != nil {
		return nil, domain.Internal(err, "collection.featured", "failed to list featured collections")
	}

	items := make([]domain.Collection, len(rows))
	for i, row := range rows {
		items[i] = collectionFromRow(row)
	}
	return items, nil
}
