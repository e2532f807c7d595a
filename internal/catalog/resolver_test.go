package catalog_test

import (
	"testing"

	"github.com/DevAttaKhan/dawn/internal/catalog"
	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uid builds a deterministic UUID for test fixtures.
func uid(n byte) pgtype.UUID {
	var id pgtype.UUID
	id.Bytes[15] = n
	id.Valid = true
	return id
}

func sel(optionID, valueID pgtype.UUID) domain.VariantSelection {
	return domain.VariantSelection{OptionID: optionID, ValueID: valueID}
}

// Fixture IDs for the "Bag" product: Color={Red, Black}, Size={S, M}.
var (
	colorOpt = uid(1)
	sizeOpt  = uid(2)
	red      = uid(11)
	black    = uid(12)
	small    = uid(21)
	medium   = uid(22)
)

// bagProduct builds the concrete scenario product: three of the four
// possible combinations exist as variants, (Black, M) does not.
func bagProduct() *domain.Product {
	return &domain.Product{
		ID:             uid(100),
		Name:           "Bag",
		Slug:           "bag",
		BasePriceCents: 3500,
		Status:         domain.ProductStatusActive,
		Options: []domain.Option{
			{
				ID:   colorOpt,
				Name: "Color",
				Values: []domain.OptionValue{
					{ID: red, OptionID: colorOpt, Value: "Red"},
					{ID: black, OptionID: colorOpt, Value: "Black"},
				},
			},
			{
				ID:   sizeOpt,
				Name: "Size",
				Values: []domain.OptionValue{
					{ID: small, OptionID: sizeOpt, Value: "S"},
					{ID: medium, OptionID: sizeOpt, Value: "M"},
				},
			},
		},
		Variants: []domain.Variant{
			{
				ID:                uid(101),
				SKU:               pgtype.Text{String: "BAG-RED-S", Valid: true},
				PriceCents:        3000,
				InventoryQuantity: 2,
				Selections:        []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, small)},
			},
			{
				ID:                uid(102),
				SKU:               pgtype.Text{String: "BAG-RED-M", Valid: true},
				PriceCents:        3200,
				InventoryQuantity: 0,
				Selections:        []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, medium)},
			},
			{
				ID:                uid(103),
				SKU:               pgtype.Text{String: "BAG-BLACK-S", Valid: true},
				PriceCents:        3000,
				InventoryQuantity: 5,
				Selections:        []domain.VariantSelection{sel(colorOpt, black), sel(sizeOpt, small)},
			},
		},
	}
}

func TestResolveVariant(t *testing.T) {
	bag := bagProduct()

	tests := []struct {
		name       string
		selections []domain.VariantSelection
		wantID     pgtype.UUID
		wantMatch  bool
	}{
		{
			name:       "full exact match returns the variant",
			selections: []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, medium)},
			wantID:     uid(102),
			wantMatch:  true,
		},
		{
			name:       "exact match is order independent",
			selections: []domain.VariantSelection{sel(sizeOpt, medium), sel(colorOpt, red)},
			wantID:     uid(102),
			wantMatch:  true,
		},
		{
			name:       "subset match returns first variant in stored order",
			selections: []domain.VariantSelection{sel(colorOpt, red)},
			wantID:     uid(101),
			wantMatch:  true,
		},
		{
			name:       "empty selections return first variant",
			selections: nil,
			wantID:     uid(101),
			wantMatch:  true,
		},
		{
			name:       "combination not stored as variant yields no match",
			selections: []domain.VariantSelection{sel(colorOpt, black), sel(sizeOpt, medium)},
			wantMatch:  false,
		},
		{
			name:       "unknown value yields no match",
			selections: []domain.VariantSelection{sel(colorOpt, uid(99))},
			wantMatch:  false,
		},
		{
			name:       "unknown option yields no match",
			selections: []domain.VariantSelection{sel(uid(98), red)},
			wantMatch:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := catalog.ResolveVariant(bag, tt.selections)
			if !tt.wantMatch {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.wantID, v.ID)
		})
	}
}

func TestResolveVariant_Deterministic(t *testing.T) {
	bag := bagProduct()
	selections := []domain.VariantSelection{sel(colorOpt, red)}

	first := catalog.ResolveVariant(bag, selections)
	require.NotNil(t, first)

	for i := 0; i < 10; i++ {
		assert.Same(t, first, catalog.ResolveVariant(bag, selections))
	}
}

func TestResolveVariant_IdentityNotDisplayString(t *testing.T) {
	// Two different option values share the display string "Black". Only the
	// value ID under the selected option may match.
	p := bagProduct()
	finishOpt := uid(3)
	blackFinish := uid(31)
	p.Options = append(p.Options, domain.Option{
		ID:   finishOpt,
		Name: "Finish",
		Values: []domain.OptionValue{
			{ID: blackFinish, OptionID: finishOpt, Value: "Black"},
		},
	})

	// Selecting the Finish "Black" value must not be satisfied by variants
	// that carry the Color "Black" value.
	v := catalog.ResolveVariant(p, []domain.VariantSelection{sel(finishOpt, blackFinish)})
	assert.Nil(t, v)

	// And pairing a value ID with the wrong option ID never matches.
	v = catalog.ResolveVariant(p, []domain.VariantSelection{sel(finishOpt, black)})
	assert.Nil(t, v)
}

func TestResolveVariant_DuplicateSelectionSets(t *testing.T) {
	// Two variants with identical selection sets is invalid catalog data;
	// the resolver returns whichever is first in stored order, no crash.
	p := bagProduct()
	dup := p.Variants[0]
	dup.ID = uid(104)
	dup.PriceCents = 9999
	p.Variants = append(p.Variants, dup)

	v := catalog.ResolveVariant(p, []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, small)})
	require.NotNil(t, v)
	assert.Equal(t, uid(101), v.ID)
}

func TestResolveVariant_NoVariants(t *testing.T) {
	p := &domain.Product{Name: "Gift Card", BasePriceCents: 2500}

	assert.Nil(t, catalog.ResolveVariant(p, nil))
	assert.Nil(t, catalog.ResolveVariant(p, []domain.VariantSelection{sel(colorOpt, red)}))
}

func TestResolveVariant_VariantMissingSelection(t *testing.T) {
	// A variant missing its Size selection cannot satisfy any selection
	// state that constrains Size, but still matches Color-only state.
	p := bagProduct()
	p.Variants[0].Selections = []domain.VariantSelection{sel(colorOpt, red)}

	v := catalog.ResolveVariant(p, []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, small)})
	assert.Nil(t, v, "no remaining variant carries (Red, S)")

	v = catalog.ResolveVariant(p, []domain.VariantSelection{sel(colorOpt, red)})
	require.NotNil(t, v)
	assert.Equal(t, uid(101), v.ID)
}

func TestInitialSelections(t *testing.T) {
	t.Run("first value of every option in stored order", func(t *testing.T) {
		got := catalog.InitialSelections(bagProduct())

		assert.Equal(t, []domain.VariantSelection{
			sel(colorOpt, red),
			sel(sizeOpt, small),
		}, got)
	})

	t.Run("option without values is omitted", func(t *testing.T) {
		p := bagProduct()
		p.Options = append(p.Options, domain.Option{ID: uid(3), Name: "Material"})

		got := catalog.InitialSelections(p)

		assert.Len(t, got, 2, "empty option must not fabricate a value")
	})

	t.Run("product without options", func(t *testing.T) {
		p := &domain.Product{Name: "Gift Card", BasePriceCents: 2500}

		assert.Empty(t, catalog.InitialSelections(p))
	})

	t.Run("defaults resolve to the first variant", func(t *testing.T) {
		bag := bagProduct()

		v := catalog.ResolveVariant(bag, catalog.InitialSelections(bag))

		require.NotNil(t, v)
		assert.Equal(t, uid(101), v.ID)
	})
}

func TestSelect(t *testing.T) {
	initial := []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, small)}

	t.Run("replaces the entry for a selected option", func(t *testing.T) {
		got := catalog.Select(initial, sizeOpt, medium)

		assert.Equal(t, []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, medium)}, got)
	})

	t.Run("appends when the option was not yet selected", func(t *testing.T) {
		got := catalog.Select([]domain.VariantSelection{sel(colorOpt, red)}, sizeOpt, medium)

		assert.Equal(t, []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, medium)}, got)
	})

	t.Run("does not mutate the prior state", func(t *testing.T) {
		before := []domain.VariantSelection{sel(colorOpt, red), sel(sizeOpt, small)}

		catalog.Select(before, sizeOpt, medium)

		assert.Equal(t, initial, before)
	})
}
