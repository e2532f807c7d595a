package catalog_test

import (
	"testing"

	"github.com/DevAttaKhan/dawn/internal/catalog"
	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_BagScenario walks the concrete Bag example end to end:
// V1=(Red,S,$30,inv 2), V2=(Red,M,$32,inv 0), V3=(Black,S,$30,inv 5),
// with (Black,M) not stored.
func TestResolve_BagScenario(t *testing.T) {
	bag := bagProduct()

	t.Run("red medium matches V2 and is sold out", func(t *testing.T) {
		offer := catalog.Resolve(bag, []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, medium)})

		require.NotNil(t, offer.Variant)
		assert.Equal(t, uid(102), offer.Variant.ID)
		assert.Equal(t, int32(3200), offer.PriceCents)
		assert.Equal(t, int32(0), offer.InventoryQuantity)
		assert.True(t, offer.SoldOut)
	})

	t.Run("black medium has no variant and is sold out", func(t *testing.T) {
		offer := catalog.Resolve(bag, []domain.VariantSelection{sel(colorOpt, black), sel(sizeOpt, medium)})

		assert.Nil(t, offer.Variant)
		assert.True(t, offer.SoldOut)
		assert.Equal(t, int32(0), offer.InventoryQuantity)
	})

	t.Run("red alone resolves to the first stored match", func(t *testing.T) {
		offer := catalog.Resolve(bag, []domain.VariantSelection{sel(colorOpt, red)})

		require.NotNil(t, offer.Variant)
		assert.Equal(t, uid(101), offer.Variant.ID)
		assert.Equal(t, int32(3000), offer.PriceCents)
		assert.Equal(t, int32(2), offer.InventoryQuantity)
		assert.False(t, offer.SoldOut)
		assert.Equal(t, "BAG-RED-S", offer.SKU.String)
	})
}

func TestResolve_VariantFieldsWinOnMatch(t *testing.T) {
	bag := bagProduct()
	bag.SalePriceCents = pgtype.Int4{Int32: 2000, Valid: true}
	bag.InventoryQuantity = 50
	bag.Variants[0].CompareAtPriceCents = pgtype.Int4{Int32: 3900, Valid: true}

	offer := catalog.Resolve(bag, []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, small)})

	require.NotNil(t, offer.Variant)
	assert.Equal(t, int32(3000), offer.PriceCents, "variant price, not product sale price")
	assert.Equal(t, int32(3900), offer.CompareAtCents.Int32, "variant compare-at, not product base price")
	assert.Equal(t, int32(2), offer.InventoryQuantity, "variant inventory, not product fallback")
	assert.True(t, offer.OnSale)
}

func TestResolve_NoMatchIgnoresProductInventory(t *testing.T) {
	// With variants present, a non-match is sold out even when the
	// product-level fallback inventory is positive.
	bag := bagProduct()
	bag.InventoryQuantity = 50

	offer := catalog.Resolve(bag, []domain.VariantSelection{sel(colorOpt, black), sel(sizeOpt, medium)})

	assert.Nil(t, offer.Variant)
	assert.True(t, offer.SoldOut)
}

func TestResolve_ProductWithoutVariants(t *testing.T) {
	p := &domain.Product{
		Name:              "Gift Card",
		Slug:              "gift-card",
		BasePriceCents:    2500,
		InventoryQuantity: 10,
	}

	t.Run("sells on product fields", func(t *testing.T) {
		offer := catalog.Resolve(p, nil)

		assert.Nil(t, offer.Variant)
		assert.Equal(t, int32(2500), offer.PriceCents)
		assert.Equal(t, int32(10), offer.InventoryQuantity)
		assert.False(t, offer.SoldOut)
		assert.False(t, offer.OnSale)
	})

	t.Run("sale price becomes the effective price", func(t *testing.T) {
		sale := *p
		sale.SalePriceCents = pgtype.Int4{Int32: 1900, Valid: true}

		offer := catalog.Resolve(&sale, nil)

		assert.Equal(t, int32(1900), offer.PriceCents)
		assert.Equal(t, int32(2500), offer.CompareAtCents.Int32)
		assert.True(t, offer.OnSale)
	})

	t.Run("zero inventory is sold out", func(t *testing.T) {
		empty := *p
		empty.InventoryQuantity = 0

		offer := catalog.Resolve(&empty, nil)

		assert.True(t, offer.SoldOut)
	})
}

func TestClampQuantity(t *testing.T) {
	inStock := catalog.Offer{InventoryQuantity: 5}
	soldOut := catalog.Offer{SoldOut: true}

	tests := []struct {
		name      string
		requested int32
		offer     catalog.Offer
		want      int32
	}{
		{"within range", 3, inStock, 3},
		{"above inventory clamps down", 9, inStock, 5},
		{"zero clamps up to one", 0, inStock, 1},
		{"negative clamps up to one", -4, inStock, 1},
		{"sold out yields zero", 3, soldOut, 0},
		{"no inventory yields zero", 3, catalog.Offer{InventoryQuantity: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ClampQuantity(tt.requested, tt.offer))
		})
	}
}
