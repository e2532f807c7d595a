package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ListActiveProductsParams narrows and orders the storefront listing.
// Invalid (zero) fields mean "no constraint".
type ListActiveProductsParams struct {
	Search        pgtype.Text
	Availability  pgtype.Text // "in_stock" or "sold_out"
	PriceMinCents pgtype.Int4
	PriceMaxCents pgtype.Int4
	CollectionID  pgtype.UUID
	SortKey       string
	Limit         int32
	Offset        int32
}

// CountActiveProductsParams carries the filter half of a listing query.
type CountActiveProductsParams struct {
	Search        pgtype.Text
	Availability  pgtype.Text
	PriceMinCents pgtype.Int4
	PriceMaxCents pgtype.Int4
	CollectionID  pgtype.UUID
}

// ListActiveProductsRow is one storefront listing entry. AvailableQuantity
// sums variant inventory, falling back to product-level inventory for
// products without variants.
type ListActiveProductsRow struct {
	ID                pgtype.UUID
	Name              string
	Slug              string
	BasePriceCents    int32
	SalePriceCents    pgtype.Int4
	AvailableQuantity int64
	PrimaryImageUrl   pgtype.Text
	PrimaryImageAlt   pgtype.Text
	SortOrder         int32
	CreatedAt         pgtype.Timestamptz
}

const listActiveProductsBase = `
SELECT p.id, p.name, p.slug, p.base_price_cents, p.sale_price_cents,
       COALESCE(v.total_inventory, p.inventory_quantity)::bigint AS available_quantity,
       img.url, img.alt_text, p.sort_order, p.created_at
FROM products p
LEFT JOIN (
    SELECT product_id, SUM(inventory_quantity) AS total_inventory
    FROM product_variants
    GROUP BY product_id
) v ON v.product_id = p.id
LEFT JOIN LATERAL (
    SELECT url, alt_text
    FROM product_images
    WHERE product_id = p.id
    ORDER BY is_primary DESC, sort_order ASC
    LIMIT 1
) img ON true
`

// productListingWhere builds the shared WHERE clause for listing and count
// queries. Positional placeholders start at $1.
func productListingWhere(search, availability pgtype.Text, priceMin, priceMax pgtype.Int4, collectionID pgtype.UUID) (string, []any) {
	conds := []string{"p.status = 'active'"}
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if search.Valid && search.String != "" {
		conds = append(conds, fmt.Sprintf("p.name ILIKE '%%' || %s || '%%'", arg(search.String)))
	}
	if availability.Valid {
		switch availability.String {
		case "in_stock":
			conds = append(conds, "COALESCE(v.total_inventory, p.inventory_quantity) > 0")
		case "sold_out":
			conds = append(conds, "COALESCE(v.total_inventory, p.inventory_quantity) = 0")
		}
	}
	if priceMin.Valid {
		conds = append(conds, fmt.Sprintf("COALESCE(p.sale_price_cents, p.base_price_cents) >= %s", arg(priceMin.Int32)))
	}
	if priceMax.Valid {
		conds = append(conds, fmt.Sprintf("COALESCE(p.sale_price_cents, p.base_price_cents) <= %s", arg(priceMax.Int32)))
	}
	if collectionID.Valid {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM collection_products cp WHERE cp.product_id = p.id AND cp.collection_id = %s)",
			arg(collectionID)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// productOrderBy maps a sort key to an ORDER BY clause. Featured order is
// the stored sort_order with newest first as tie-break.
func productOrderBy(sortKey string) string {
	switch sortKey {
	case "name_asc":
		return "ORDER BY lower(p.name) ASC"
	case "name_desc":
		return "ORDER BY lower(p.name) DESC"
	case "date_asc":
		return "ORDER BY p.created_at ASC"
	case "date_desc":
		return "ORDER BY p.created_at DESC"
	default:
		return "ORDER BY p.sort_order ASC, p.created_at DESC"
	}
}

// ListActiveProducts returns one page of the active-product listing.
func (q *Queries) ListActiveProducts(ctx context.Context, arg ListActiveProductsParams) ([]ListActiveProductsRow, error) {
	where, args := productListingWhere(arg.Search, arg.Availability, arg.PriceMinCents, arg.PriceMaxCents, arg.CollectionID)

	sql := fmt.Sprintf("%s %s %s LIMIT $%d OFFSET $%d",
		listActiveProductsBase, where, productOrderBy(arg.SortKey), len(args)+1, len(args)+2)
	args = append(args, arg.Limit, arg.Offset)

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListActiveProductsRow
	for rows.Next() {
		var r ListActiveProductsRow
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Slug, &r.BasePriceCents, &r.SalePriceCents,
			&r.AvailableQuantity, &r.PrimaryImageUrl, &r.PrimaryImageAlt,
			&r.SortOrder, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// CountActiveProducts returns the unpaginated total for a listing query.
func (q *Queries) CountActiveProducts(ctx context.Context, arg CountActiveProductsParams) (int64, error) {
	where, args := productListingWhere(arg.Search, arg.Availability, arg.PriceMinCents, arg.PriceMaxCents, arg.CollectionID)

	sql := fmt.Sprintf(`
SELECT COUNT(*)
FROM products p
LEFT JOIN (
    SELECT product_id, SUM(inventory_quantity) AS total_inventory
    FROM product_variants
    GROUP BY product_id
) v ON v.product_id = p.id
%s`, where)

	var total int64
	if err := q.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

const getProductBySlug = `
SELECT id, name, slug, description, base_price_cents, sale_price_cents,
       inventory_quantity, status, sort_order, created_at, updated_at
FROM products
WHERE slug = $1 AND status = 'active'
`

// GetProductBySlug fetches one active product row by slug.
func (q *Queries) GetProductBySlug(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := q.db.QueryRow(ctx, getProductBySlug, slug).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.BasePriceCents,
		&p.SalePriceCents, &p.InventoryQuantity, &p.Status, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

const getProductOptions = `
SELECT id, product_id, name, position
FROM product_options
WHERE product_id = $1
ORDER BY position ASC
`

// GetProductOptions returns a product's options in stored order.
func (q *Queries) GetProductOptions(ctx context.Context, productID pgtype.UUID) ([]ProductOption, error) {
	rows, err := q.db.Query(ctx, getProductOptions, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ProductOption
	for rows.Next() {
		var o ProductOption
		if err := rows.Scan(&o.ID, &o.ProductID, &o.Name, &o.Position); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const getProductOptionValues = `
SELECT ov.id, ov.option_id, ov.value, ov.position
FROM option_values ov
JOIN product_options po ON po.id = ov.option_id
WHERE po.product_id = $1
ORDER BY po.position ASC, ov.position ASC
`

// GetProductOptionValues returns all option values for a product's options
// in stored order.
func (q *Queries) GetProductOptionValues(ctx context.Context, productID pgtype.UUID) ([]OptionValue, error) {
	rows, err := q.db.Query(ctx, getProductOptionValues, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OptionValue
	for rows.Next() {
		var v OptionValue
		if err := rows.Scan(&v.ID, &v.OptionID, &v.Value, &v.Position); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

const getProductVariants = `
SELECT id, product_id, sku, price_cents, compare_at_price_cents,
       inventory_quantity, position
FROM product_variants
WHERE product_id = $1
ORDER BY position ASC
`

// GetProductVariants returns a product's variants in stored order.
func (q *Queries) GetProductVariants(ctx context.Context, productID pgtype.UUID) ([]ProductVariant, error) {
	rows, err := q.db.Query(ctx, getProductVariants, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ProductVariant
	for rows.Next() {
		var v ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Sku, &v.PriceCents,
			&v.CompareAtPriceCents, &v.InventoryQuantity, &v.Position); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

const getProductVariantSelections = `
SELECT vs.variant_id, vs.option_id, vs.value_id
FROM variant_selections vs
JOIN product_variants pv ON pv.id = vs.variant_id
WHERE pv.product_id = $1
ORDER BY pv.position ASC
`

// GetProductVariantSelections returns the selection pairs of every variant
// of a product.
func (q *Queries) GetProductVariantSelections(ctx context.Context, productID pgtype.UUID) ([]VariantSelection, error) {
	rows, err := q.db.Query(ctx, getProductVariantSelections, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []VariantSelection
	for rows.Next() {
		var s VariantSelection
		if err := rows.Scan(&s.VariantID, &s.OptionID, &s.ValueID); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const getProductImages = `
SELECT id, product_id, url, alt_text, sort_order, is_primary
FROM product_images
WHERE product_id = $1
ORDER BY is_primary DESC, sort_order ASC
`

// GetProductImages returns a product's images, primary first.
func (q *Queries) GetProductImages(ctx context.Context, productID pgtype.UUID) ([]ProductImage, error) {
	rows, err := q.db.Query(ctx, getProductImages, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ProductImage
	for rows.Next() {
		var img ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Url, &img.AltText,
			&img.SortOrder, &img.IsPrimary); err != nil {
			return nil, err
		}
		items = append(items, img)
	}
	return items, rows.Err()
}
