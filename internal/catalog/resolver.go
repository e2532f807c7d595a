// Package catalog implements the storefront's variant resolution: mapping a
// shopper's in-progress option choices onto a product's stored variants. All
// functions here are pure; they read the product aggregate and return new
// values, so they are safe to call concurrently without coordination.
package catalog

import (
	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

// ResolveVariant returns the first variant, in stored order, whose selection
// set contains every pair in selections, matched by exact (optionID, valueID)
// identity. An empty selections set matches the first variant. Returns nil
// when no variant matches or the product has no variants.
//
// Subset matching is deliberate: the UI resolves before the shopper has
// touched every option, and a "best current match" is shown while they are
// still choosing. Pairs referencing options or values that do not exist on
// the product simply never match, so stale selection state degrades to a
// non-match instead of failing.
func ResolveVariant(p *domain.Product, selections []domain.VariantSelection) *domain.Variant {
	for i := range p.Variants {
		if variantMatches(&p.Variants[i], selections) {
			return &p.Variants[i]
		}
	}
	return nil
}

// variantMatches reports whether every selected pair appears in the
// variant's own selection set.
func variantMatches(v *domain.Variant, selections []domain.VariantSelection) bool {
	for _, sel := range selections {
		found := false
		for _, own := range v.Selections {
			if own.OptionID == sel.OptionID && own.ValueID == sel.ValueID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// InitialSelections builds the default selection state for a product page:
// the first value, in stored order, of every option. Options with zero
// values are omitted; a value is never fabricated.
func InitialSelections(p *domain.Product) []domain.VariantSelection {
	selections := make([]domain.VariantSelection, 0, len(p.Options))
	for _, opt := range p.Options {
		if len(opt.Values) == 0 {
			continue
		}
		selections = append(selections, domain.VariantSelection{
			OptionID: opt.ID,
			ValueID:  opt.Values[0].ID,
		})
	}
	return selections
}

// Select returns a new selection state with the entry for optionID replaced
// by (optionID, valueID), appending when the option was not yet selected.
// The input slice is not mutated; each change is a discrete, complete
// replacement of one entry.
func Select(selections []domain.VariantSelection, optionID, valueID pgtype.UUID) []domain.VariantSelection {
	updated := make([]domain.VariantSelection, len(selections))
	copy(updated, selections)

	for i := range updated {
		if updated[i].OptionID == optionID {
			updated[i].ValueID = valueID
			return updated
		}
	}
	return append(updated, domain.VariantSelection{OptionID: optionID, ValueID: valueID})
}
