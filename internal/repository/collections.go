package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ListCollectionsParams narrows and orders the collection listing.
type ListCollectionsParams struct {
	Search  pgtype.Text
	SortKey string
	Limit   int32
	Offset  int32
}

// collectionOrderBy maps a sort key to an ORDER BY clause.
func collectionOrderBy(sortKey string) string {
	switch sortKey {
	case "name_asc":
		return "ORDER BY lower(name) ASC"
	case "name_desc":
		return "ORDER BY lower(name) DESC"
	case "date_asc":
		return "ORDER BY created_at ASC"
	case "date_desc":
		return "ORDER BY created_at DESC"
	default:
		return "ORDER BY sort_order ASC, created_at DESC"
	}
}

// ListCollections returns one page of collections.
func (q *Queries) ListCollections(ctx context.Context, arg ListCollectionsParams) ([]Collection, error) {
	sql := fmt.Sprintf(`
SELECT id, name, handle, description, image_url, sort_order, created_at
FROM collections
WHERE ($1::text IS NULL OR name ILIKE '%%' || $1 || '%%')
%s
LIMIT $2 OFFSET $3`, collectionOrderBy(arg.SortKey))

	rows, err := q.db.Query(ctx, sql, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Collection
	for rows.Next() {
		var c Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.Handle, &c.Description,
			&c.ImageUrl, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const countCollections = `
SELECT COUNT(*)
FROM collections
WHERE ($1::text IS NULL OR name ILIKE '%' || $1 || '%')
`

// CountCollections returns the unpaginated collection total.
func (q *Queries) CountCollections(ctx context.Context, search pgtype.Text) (int64, error) {
	var total int64
	if err := q.db.QueryRow(ctx, countCollections, search).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

const getCollectionByHandle = `
SELECT id, name, handle, description, image_url, sort_order, created_at
FROM collections
WHERE handle = $1
`

// GetCollectionByHandle fetches one collection row by handle.
func (q *Queries) GetCollectionByHandle(ctx context.Context, handle string) (Collection, error) {
	var c Collection
	err := q.db.QueryRow(ctx, getCollectionByHandle, handle).Scan(
		&c.ID, &c.Name, &c.Handle, &c.Description, &c.ImageUrl,
		&c.SortOrder, &c.CreatedAt,
	)
	return c, err
}
