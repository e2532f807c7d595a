package domain

import "github.com/jackc/pgx/v5/pgtype"

// Collection groups products for browsing (e.g., "Bags", "Shoes").
type Collection struct {
	ID          pgtype.UUID
	Name        string `validate:"required"`
	Handle      string `validate:"required"`
	Description pgtype.Text
	ImageURL    pgtype.Text
	SortOrder   int32
	CreatedAt   pgtype.Timestamptz
}

// CollectionFilter contains optional filters for collection listing.
type CollectionFilter struct {
	// Search matches against the collection name, case-insensitively.
	Search string

	Sort     SortKey
	Page     int32
	PageSize int32
}

// CollectionPage is one page of a collection listing with the total count.
type CollectionPage struct {
	Items    []Collection
	Total    int64
	Page     int32
	PageSize int32
}
