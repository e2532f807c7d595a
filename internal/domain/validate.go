package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateProduct checks a product aggregate once at the catalog store
// boundary. It reports scalar constraint violations (via struct tags) and the
// structural invariants the resolver relies on: option values unique within
// an option, at most one selection per option on each variant, and no two
// variants sharing an identical selection set.
//
// A failure is a data-integrity report, not a hard error: the resolver is
// total over malformed aggregates and degrades to non-match, so callers log
// the returned ValidationError and keep serving.
func ValidateProduct(p *Product) error {
	var err error

	if verr := validate.Struct(p); verr != nil {
		for _, fe := range verr.(validator.ValidationErrors) {
			err = AddFieldError(err, fe.Field(), fmt.Sprintf("failed %q constraint", fe.Tag()))
		}
	}

	if p.SalePriceCents.Valid && p.SalePriceCents.Int32 >= p.BasePriceCents {
		err = AddFieldError(err, "SalePriceCents", "sale price should be less than base price")
	}

	for i, opt := range p.Options {
		if verr := validate.Struct(opt); verr != nil {
			err = AddFieldError(err, fmt.Sprintf("Options[%d]", i), "invalid option")
		}
		if len(opt.Values) == 0 {
			err = AddFieldError(err, fmt.Sprintf("Options[%d]", i), "option has no values")
		}

		seen := make(map[[16]byte]bool, len(opt.Values))
		for j, val := range opt.Values {
			if verr := validate.Struct(val); verr != nil {
				err = AddFieldError(err, fmt.Sprintf("Options[%d].Values[%d]", i, j), "invalid option value")
			}
			if seen[val.ID.Bytes] {
				err = AddFieldError(err, fmt.Sprintf("Options[%d].Values[%d]", i, j), "duplicate option value ID")
			}
			seen[val.ID.Bytes] = true
		}
	}

	// Variant selection sets must be unique per product and carry at most
	// one selection per option.
	sets := make(map[string]int, len(p.Variants))
	for i, v := range p.Variants {
		if verr := validate.Struct(v); verr != nil {
			err = AddFieldError(err, fmt.Sprintf("Variants[%d]", i), "invalid variant")
		}

		perOption := make(map[[16]byte]bool, len(v.Selections))
		for _, sel := range v.Selections {
			if perOption[sel.OptionID.Bytes] {
				err = AddFieldError(err, fmt.Sprintf("Variants[%d]", i), "multiple selections for one option")
			}
			perOption[sel.OptionID.Bytes] = true
		}
		if len(v.Selections) < len(p.Options) {
			err = AddFieldError(err, fmt.Sprintf("Variants[%d]", i), "missing selection for one or more options")
		}

		key := selectionKey(v.Selections)
		if prev, ok := sets[key]; ok {
			err = AddFieldError(err, fmt.Sprintf("Variants[%d]", i), fmt.Sprintf("selection set duplicates variant %d", prev))
		} else {
			sets[key] = i
		}
	}

	if err != nil {
		err.(*ValidationError).Op = "catalog.validate"
	}
	return err
}

// selectionKey builds an order-independent fingerprint of a selection set.
func selectionKey(sels []VariantSelection) string {
	parts := make([]string, len(sels))
	for i, sel := range sels {
		parts[i] = fmt.Sprintf("%x=%x", sel.OptionID.Bytes, sel.ValueID.Bytes)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
