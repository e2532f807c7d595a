package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgx a query needs, satisfied by *pgxpool.Pool and
// pgx.Tx alike.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Querier is the query surface consumed by services. Tests provide
// func-field mocks of this interface.
type Querier interface {
	// Storefront reads
	ListActiveProducts(ctx context.Context, arg ListActiveProductsParams) ([]ListActiveProductsRow, error)
	CountActiveProducts(ctx context.Context, arg CountActiveProductsParams) (int64, error)
	GetProductBySlug(ctx context.Context, slug string) (Product, error)
	GetProductOptions(ctx context.Context, productID pgtype.UUID) ([]ProductOption, error)
	GetProductOptionValues(ctx context.Context, productID pgtype.UUID) ([]OptionValue, error)
	GetProductVariants(ctx context.Context, productID pgtype.UUID) ([]ProductVariant, error)
	GetProductVariantSelections(ctx context.Context, productID pgtype.UUID) ([]VariantSelection, error)
	GetProductImages(ctx context.Context, productID pgtype.UUID) ([]ProductImage, error)

	ListCollections(ctx context.Context, arg ListCollectionsParams) ([]Collection, error)
	CountCollections(ctx context.Context, search pgtype.Text) (int64, error)
	GetCollectionByHandle(ctx context.Context, handle string) (Collection, error)

	// Catalog loading (cmd/seed)
	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	CreateProductOption(ctx context.Context, arg CreateProductOptionParams) (ProductOption, error)
	CreateOptionValue(ctx context.Context, arg CreateOptionValueParams) (OptionValue, error)
	CreateProductVariant(ctx context.Context, arg CreateProductVariantParams) (ProductVariant, error)
	CreateVariantSelection(ctx context.Context, arg VariantSelection) error
	CreateProductImage(ctx context.Context, arg CreateProductImageParams) (ProductImage, error)
	CreateCollection(ctx context.Context, arg CreateCollectionParams) (Collection, error)
	AddProductToCollection(ctx context.Context, collectionID, productID pgtype.UUID) error
}

// Queries implements Querier against a live database.
type Queries struct {
	db DBTX
}

// New creates a Queries bound to the given connection or pool.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

var _ Querier = (*Queries)(nil)
