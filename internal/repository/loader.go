package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Write queries used by cmd/seed to load a catalog. The storefront itself
// never writes; the catalog is externally managed.

// CreateProductParams contains parameters for inserting a product.
type CreateProductParams struct {
	Name              string
	Slug              string
	Description       pgtype.Text
	BasePriceCents    int32
	SalePriceCents    pgtype.Int4
	InventoryQuantity int32
	Status            string
	SortOrder         int32
}

const createProduct = `
INSERT INTO products (name, slug, description, base_price_cents, sale_price_cents,
                      inventory_quantity, status, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, name, slug, description, base_price_cents, sale_price_cents,
          inventory_quantity, status, sort_order, created_at, updated_at
`

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	var p Product
	err := q.db.QueryRow(ctx, createProduct,
		arg.Name, arg.Slug, arg.Description, arg.BasePriceCents, arg.SalePriceCents,
		arg.InventoryQuantity, arg.Status, arg.SortOrder,
	).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.BasePriceCents,
		&p.SalePriceCents, &p.InventoryQuantity, &p.Status, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreateProductOptionParams contains parameters for inserting an option.
type CreateProductOptionParams struct {
	ProductID pgtype.UUID
	Name      string
	Position  int32
}

const createProductOption = `
INSERT INTO product_options (product_id, name, position)
VALUES ($1, $2, $3)
RETURNING id, product_id, name, position
`

func (q *Queries) CreateProductOption(ctx context.Context, arg CreateProductOptionParams) (ProductOption, error) {
	var o ProductOption
	err := q.db.QueryRow(ctx, createProductOption, arg.ProductID, arg.Name, arg.Position).
		Scan(&o.ID, &o.ProductID, &o.Name, &o.Position)
	return o, err
}

// CreateOptionValueParams contains parameters for inserting an option value.
type CreateOptionValueParams struct {
	OptionID pgtype.UUID
	Value    string
	Position int32
}

const createOptionValue = `
INSERT INTO option_values (option_id, value, position)
VALUES ($1, $2, $3)
RETURNING id, option_id, value, position
`

func (q *Queries) CreateOptionValue(ctx context.Context, arg CreateOptionValueParams) (OptionValue, error) {
	var v OptionValue
	err := q.db.QueryRow(ctx, createOptionValue, arg.OptionID, arg.Value, arg.Position).
		Scan(&v.ID, &v.OptionID, &v.Value, &v.Position)
	return v, err
}

// CreateProductVariantParams contains parameters for inserting a variant.
type CreateProductVariantParams struct {
	ProductID           pgtype.UUID
	Sku                 pgtype.Text
	PriceCents          int32
	CompareAtPriceCents pgtype.Int4
	InventoryQuantity   int32
	Position            int32
}

const createProductVariant = `
INSERT INTO product_variants (product_id, sku, price_cents, compare_at_price_cents,
                              inventory_quantity, position)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, product_id, sku, price_cents, compare_at_price_cents,
          inventory_quantity, position
`

func (q *Queries) CreateProductVariant(ctx context.Context, arg CreateProductVariantParams) (ProductVariant, error) {
	var v ProductVariant
	err := q.db.QueryRow(ctx, createProductVariant,
		arg.ProductID, arg.Sku, arg.PriceCents, arg.CompareAtPriceCents,
		arg.InventoryQuantity, arg.Position,
	).Scan(&v.ID, &v.ProductID, &v.Sku, &v.PriceCents,
		&v.CompareAtPriceCents, &v.InventoryQuantity, &v.Position)
	return v, err
}

const createVariantSelection = `
INSERT INTO variant_selections (variant_id, option_id, value_id)
VALUES ($1, $2, $3)
`

func (q *Queries) CreateVariantSelection(ctx context.Context, arg VariantSelection) error {
	_, err := q.db.Exec(ctx, createVariantSelection, arg.VariantID, arg.OptionID, arg.ValueID)
	return err
}

// CreateProductImageParams contains parameters for inserting an image.
type CreateProductImageParams struct {
	ProductID pgtype.UUID
	Url       string
	AltText   pgtype.Text
	SortOrder int32
	IsPrimary bool
}

const createProductImage = `
INSERT INTO product_images (product_id, url, alt_text, sort_order, is_primary)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, product_id, url, alt_text, sort_order, is_primary
`

func (q *Queries) CreateProductImage(ctx context.Context, arg CreateProductImageParams) (ProductImage, error) {
	var img ProductImage
	err := q.db.QueryRow(ctx, createProductImage,
		arg.ProductID, arg.Url, arg.AltText, arg.SortOrder, arg.IsPrimary,
	).Scan(&img.ID, &img.ProductID, &img.Url, &img.AltText, &img.SortOrder, &img.IsPrimary)
	return img, err
}

// CreateCollectionParams contains parameters for inserting a collection.
type CreateCollectionParams struct {
	Name        string
	Handle      string
	Description pgtype.Text
	ImageUrl    pgtype.Text
	SortOrder   int32
}

const createCollection = `
INSERT INTO collections (name, handle, description, image_url, sort_order)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, handle, description, image_url, sort_order, created_at
`

func (q *Queries) CreateCollection(ctx context.Context, arg CreateCollectionParams) (Collection, error) {
	var c Collection
	err := q.db.QueryRow(ctx, createCollection,
		arg.Name, arg.Handle, arg.Description, arg.ImageUrl, arg.SortOrder,
	).Scan(&c.ID, &c.Name, &c.Handle, &c.Description, &c.ImageUrl, &c.SortOrder, &c.CreatedAt)
	return c, err
}

const addProductToCollection = `
INSERT INTO collection_products (collection_id, product_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

func (q *Queries) AddProductToCollection(ctx context.Context, collectionID, productID pgtype.UUID) error {
	_, err := q.db.Exec(ctx, addProductToCollection, collectionID, productID)
	return err
}
