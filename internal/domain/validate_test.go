package domain_test

import (
	"testing"

	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uuidN(n byte) pgtype.UUID {
	var id pgtype.UUID
	id.Bytes[15] = n
	id.Valid = true
	return id
}

func validProduct() *domain.Product {
	colorOpt := uuidN(1)
	red := uuidN(2)
	black := uuidN(3)

	return &domain.Product{
		ID:             uuidN(10),
		Name:           "Wool Beanie",
		Slug:           "wool-beanie",
		BasePriceCents: 3500,
		Status:         domain.ProductStatusActive,
		Options: []domain.Option{
			{ID: colorOpt, Name: "Color", Values: []domain.OptionValue{
				{ID: red, OptionID: colorOpt, Value: "Red"},
				{ID: black, OptionID: colorOpt, Value: "Black"},
			}},
		},
		Variants: []domain.Variant{
			{ID: uuidN(20), PriceCents: 3500, Selections: []domain.VariantSelection{{OptionID: colorOpt, ValueID: red}}},
			{ID: uuidN(21), PriceCents: 3500, Selections: []domain.VariantSelection{{OptionID: colorOpt, ValueID: black}}},
		},
	}
}

func TestValidateProduct(t *testing.T) {
	t.Run("valid aggregate passes", func(t *testing.T) {
		assert.NoError(t, domain.ValidateProduct(validProduct()))
	})

	t.Run("sale price at or above base price is flagged", func(t *testing.T) {
		p := validProduct()
		p.SalePriceCents = pgtype.Int4{Int32: 3500, Valid: true}

		err := domain.ValidateProduct(p)
		require.Error(t, err)
		assert.Contains(t, domain.GetValidationFields(err), "SalePriceCents")
	})

	t.Run("option without values is flagged", func(t *testing.T) {
		p := validProduct()
		p.Options[0].Values = nil

		err := domain.ValidateProduct(p)
		require.Error(t, err)
		assert.Contains(t, domain.GetValidationFields(err), "Options[0]")
	})

	t.Run("duplicate option value identity is flagged", func(t *testing.T) {
		p := validProduct()
		p.Options[0].Values[1].ID = p.Options[0].Values[0].ID

		err := domain.ValidateProduct(p)
		require.Error(t, err)
		assert.Contains(t, domain.GetValidationFields(err), "Options[0].Values[1]")
	})

	t.Run("duplicate variant selection sets are flagged", func(t *testing.T) {
		p := validProduct()
		p.Variants[1].Selections = p.Variants[0].Selections

		err := domain.ValidateProduct(p)
		require.Error(t, err)
		fields := domain.GetValidationFields(err)
		assert.Contains(t, fields, "Variants[1]")
	})

	t.Run("variant missing a selection axis is flagged", func(t *testing.T) {
		p := validProduct()
		p.Variants[0].Selections = nil

		err := domain.ValidateProduct(p)
		require.Error(t, err)
		assert.Contains(t, domain.GetValidationFields(err), "Variants[0]")
	})

	t.Run("two selections on one option axis are flagged", func(t *testing.T) {
		p := validProduct()
		p.Variants[0].Selections = append(p.Variants[0].Selections, domain.VariantSelection{
			OptionID: p.Options[0].ID,
			ValueID:  uuidN(4),
		})

		err := domain.ValidateProduct(p)
		require.Error(t, err)
		assert.Contains(t, domain.GetValidationFields(err), "Variants[0]")
	})
}
