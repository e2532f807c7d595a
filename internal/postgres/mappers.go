package postgres

import (
	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/DevAttaKhan/dawn/internal/repository"
	"github.com/jackc/pgx/v5/pgtype"
)

func normalizePaging(page, pageSize int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func textFrom(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// availabilityFrom collapses the multi-select into a query constraint.
// Selecting both states is the same as selecting neither.
func availabilityFrom(av []domain.Availability) pgtype.Text {
	if len(av) != 1 {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(av[0]), Valid: true}
}

func listItemFromRow(row repository.ListActiveProductsRow) domain.ProductListItem {
	item := domain.ProductListItem{
		ID:              row.ID,
		Name:            row.Name,
		Slug:            row.Slug,
		PriceCents:      row.BasePriceCents,
		SoldOut:         row.AvailableQuantity <= 0,
		PrimaryImageURL: row.PrimaryImageUrl,
		PrimaryImageAlt: row.PrimaryImageAlt,
		CreatedAt:       row.CreatedAt,
	}
	if row.SalePriceCents.Valid {
		item.PriceCents = row.SalePriceCents.Int32
		item.CompareAtCents = pgtype.Int4{Int32: row.BasePriceCents, Valid: true}
		item.OnSale = row.SalePriceCents.Int32 < row.BasePriceCents
	}
	return item
}

func collectionFromRow(row repository.Collection) domain.Collection {
	return domain.Collection{
		ID:          row.ID,
		Name:        row.Name,
		Handle:      row.Handle,
		Description: row.Description,
		ImageURL:    row.ImageUrl,
		SortOrder:   row.SortOrder,
		CreatedAt:   row.CreatedAt,
	}
}
