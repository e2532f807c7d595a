package domain

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// =============================================================================
// PRODUCT DOMAIN TYPES
// =============================================================================

// ProductStatus represents the lifecycle state of a product.
type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusArchived ProductStatus = "archived"
)

// Product represents a sellable item with its full option schema, variants,
// and images. The catalog store always loads the aggregate completely:
// options with their values, variants with their selections, in stored order.
type Product struct {
	ID          pgtype.UUID
	Name        string `validate:"required"`
	Slug        string `validate:"required"`
	Description pgtype.Text

	// Pricing and inventory. Prices are integer cents. SalePriceCents, when
	// set, is the displayed price and BasePriceCents becomes the compare-at
	// price. InventoryQuantity is the product-level fallback used when a
	// product has no variants.
	BasePriceCents    int32 `validate:"gt=0"`
	SalePriceCents    pgtype.Int4
	InventoryQuantity int32

	Status    ProductStatus `validate:"oneof=draft active archived"`
	SortOrder int32

	Options  []Option
	Variants []Variant
	Images   []ProductImage

	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// Option is a named axis of variation on a product (e.g., "Color").
// Values are kept in stored order; the first value is the UI default.
type Option struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	Name      string `validate:"required"`
	Position  int32
	Values    []OptionValue
}

// OptionValue is one concrete value of an option (e.g., "Red").
// Identity is the ID; the display string may be renamed freely.
type OptionValue struct {
	ID       pgtype.UUID
	OptionID pgtype.UUID
	Value    string `validate:"required"`
	Position int32
}

// Variant is a purchasable combination of one value per option, with its
// own price, inventory, and SKU. Selections carry exactly one entry per
// option defined on the parent product in well-formed catalog data.
type Variant struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	SKU       pgtype.Text

	PriceCents          int32 `validate:"gt=0"`
	CompareAtPriceCents pgtype.Int4
	InventoryQuantity   int32

	Position   int32
	Selections []VariantSelection
}

// VariantSelection pairs a variant with one (option, value) choice.
// Matching is by exact identity on both IDs, never by display string.
type VariantSelection struct {
	OptionID pgtype.UUID
	ValueID  pgtype.UUID
}

// ProductImage represents an image associated with a product.
type ProductImage struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	URL       string `validate:"required,url"`
	AltText   pgtype.Text
	SortOrder int32
	IsPrimary bool
}

// =============================================================================
// LISTING TYPES
// =============================================================================

// ProductListItem represents a product in a listing with display fields
// precomputed: the card shows the sale price when present, the base price
// as compare-at, and a sold-out badge when inventory is exhausted.
type ProductListItem struct {
	ID              pgtype.UUID
	Name            string
	Slug            string
	PriceCents      int32
	CompareAtCents  pgtype.Int4
	OnSale          bool
	SoldOut         bool
	PrimaryImageURL pgtype.Text
	PrimaryImageAlt pgtype.Text
	CreatedAt       pgtype.Timestamptz
}

// SortKey orders product and collection listings.
type SortKey string

const (
	SortFeatured SortKey = "featured"  // stored sort_order
	SortNameAsc  SortKey = "name_asc"  // alphabetically, A-Z
	SortNameDesc SortKey = "name_desc" // alphabetically, Z-A
	SortDateAsc  SortKey = "date_asc"  // date, old to new
	SortDateDesc SortKey = "date_desc" // date, new to old
)

// ParseSortKey maps a query parameter to a SortKey, defaulting to featured.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNameAsc, SortNameDesc, SortDateAsc, SortDateDesc:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// Availability filters listings by stock state.
type Availability string

const (
	AvailabilityInStock Availability = "in_stock"
	AvailabilitySoldOut Availability = "sold_out"
)

// ProductFilter contains optional filters for product listing.
// Zero values mean "no constraint".
type ProductFilter struct {
	// Search matches against the product name, case-insensitively.
	Search string

	// Availability is a multi-select: empty means both states.
	Availability []Availability

	// Price range in cents on the displayed (sale-or-base) price.
	PriceMinCents pgtype.Int4
	PriceMaxCents pgtype.Int4

	// CollectionID restricts the listing to one collection's members.
	CollectionID pgtype.UUID

	Sort     SortKey
	Page     int32
	PageSize int32
}

// ProductPage is one page of a product listing with the unpaginated total.
type ProductPage struct {
	Items    []ProductListItem
	Total    int64
	Page     int32
	PageSize int32
}

// =============================================================================
// SERVICE INTERFACE
// =============================================================================

// CatalogService provides read-only storefront access to the catalog.
// The catalog itself is externally managed; this interface never writes.
type CatalogService interface {
	// ListProducts returns active products matching the given filters.
	ListProducts(ctx context.Context, filter ProductFilter) (*ProductPage, error)

	// GetProductDetail retrieves a product aggregate by slug with options,
	// variants (including their selections), and images fully populated.
	GetProductDetail(ctx context.Context, slug string) (*Product, error)

	// FeaturedProducts returns the first products in featured order for the
	// home page.
	FeaturedProducts(ctx context.Context, limit int32) ([]ProductListItem, error)

	// ListCollections returns collections matching the given filters.
	ListCollections(ctx context.Context, filter CollectionFilter) (*CollectionPage, error)

	// GetCollection retrieves a collection by handle.
	GetCollection(ctx context.Context, handle string) (*Collection, error)

	// FeaturedCollections returns the first collections in featured order.
	FeaturedCollections(ctx context.Context, limit int32) ([]Collection, error)
}

// =============================================================================
// DOMAIN ERRORS
// =============================================================================

// Catalog-specific errors.
var (
	ErrProductNotFound    = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrCollectionNotFound = &Error{Code: ENOTFOUND, Message: "Collection not found"}
)
