package repository

import "github.com/jackc/pgx/v5/pgtype"

// Product mirrors one row of the products table.
type Product struct {
	ID                pgtype.UUID
	Name              string
	Slug              string
	Description       pgtype.Text
	BasePriceCents    int32
	SalePriceCents    pgtype.Int4
	InventoryQuantity int32
	Status            string
	SortOrder         int32
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

// ProductOption mirrors one row of the product_options table.
type ProductOption struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	Name      string
	Position  int32
}

// OptionValue mirrors one row of the option_values table.
type OptionValue struct {
	ID       pgtype.UUID
	OptionID pgtype.UUID
	Value    string
	Position int32
}

// ProductVariant mirrors one row of the product_variants table.
type ProductVariant struct {
	ID                  pgtype.UUID
	ProductID           pgtype.UUID
	Sku                 pgtype.Text
	PriceCents          int32
	CompareAtPriceCents pgtype.Int4
	InventoryQuantity   int32
	Position            int32
}

// VariantSelection mirrors one row of the variant_selections table.
type VariantSelection struct {
	VariantID pgtype.UUID
	OptionID  pgtype.UUID
	ValueID   pgtype.UUID
}

// ProductImage mirrors one row of the product_images table.
type ProductImage struct {
	ID        pgtype.UUID
	ProductID pgtype.UUID
	Url       string
	AltText   pgtype.Text
	SortOrder int32
	IsPrimary bool
}

// Collection mirrors one row of the collections table.
type Collection struct {
	ID          pgtype.UUID
	Name        string
	Handle      string
	Description pgtype.Text
	ImageUrl    pgtype.Text
	SortOrder   int32
	CreatedAt   pgtype.Timestamptz
}
