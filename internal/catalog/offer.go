package catalog

import (
	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

// Offer is the display bundle for one product page render: the matched
// variant (nil when none matches) and the effective price, compare-at price,
// and inventory the presentation layer should show.
type Offer struct {
	// Variant is the resolved variant, nil when no variant matches.
	Variant *domain.Variant

	PriceCents        int32
	CompareAtCents    pgtype.Int4
	InventoryQuantity int32
	SKU               pgtype.Text

	OnSale  bool
	SoldOut bool
}

// Resolve computes the display bundle for a product and the shopper's
// current selection state.
//
// Field sourcing is consistent per side: when a variant matches, price,
// compare-at, inventory, and SKU all come from the variant. When no variant
// matches, price falls back to the product's sale price if present, else its
// base price, with the base price as compare-at and product-level inventory.
//
// A product with variants and no matching variant is sold out regardless of
// product-level inventory. A product with no variants at all sells on its
// own price and inventory fields.
func Resolve(p *domain.Product, selections []domain.VariantSelection) Offer {
	if len(p.Variants) == 0 {
		offer := productOffer(p)
		offer.SoldOut = offer.InventoryQuantity == 0
		offer.OnSale = onSale(offer.PriceCents, offer.CompareAtCents)
		return offer
	}

	v := ResolveVariant(p, selections)
	if v == nil {
		offer := productOffer(p)
		offer.SoldOut = true
		offer.InventoryQuantity = 0
		return offer
	}

	offer := Offer{
		Variant:           v,
		PriceCents:        v.PriceCents,
		CompareAtCents:    v.CompareAtPriceCents,
		InventoryQuantity: v.InventoryQuantity,
		SKU:               v.SKU,
	}
	offer.SoldOut = v.InventoryQuantity == 0
	offer.OnSale = onSale(offer.PriceCents, offer.CompareAtCents)
	return offer
}

// productOffer builds the product-level fallback fields.
func productOffer(p *domain.Product) Offer {
	price := p.BasePriceCents
	var compareAt pgtype.Int4
	if p.SalePriceCents.Valid {
		price = p.SalePriceCents.Int32
		compareAt = pgtype.Int4{Int32: p.BasePriceCents, Valid: true}
	}
	return Offer{
		PriceCents:        price,
		CompareAtCents:    compareAt,
		InventoryQuantity: p.InventoryQuantity,
	}
}

// onSale reports whether the sale badge shows: a compare-at price exists and
// the effective price undercuts it.
func onSale(priceCents int32, compareAt pgtype.Int4) bool {
	return compareAt.Valid && priceCents < compareAt.Int32
}

// ClampQuantity bounds a requested add-to-cart quantity to
// [1, offer.InventoryQuantity]. Returns 0 when the offer is sold out; the
// caller must not submit a line item in that case.
func ClampQuantity(requested int32, offer Offer) int32 {
	if offer.SoldOut || offer.InventoryQuantity <= 0 {
		return 0
	}
	if requested < 1 {
		return 1
	}
	if requested > offer.InventoryQuantity {
		return offer.InventoryQuantity
	}
	return requested
}
