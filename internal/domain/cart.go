package domain

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// CartItem is one line in a shopper's cart. LineID is the resolved variant's
// ID, or the product's ID when the product has no variants, so re-adding the
// same purchasable merges into one line. UnitPriceCents is the effective
// price captured at resolution time.
type CartItem struct {
	LineID         string
	ProductID      pgtype.UUID
	VariantID      pgtype.UUID // zero value when the product has no variants
	Name           string
	Slug           string
	ImageURL       string
	UnitPriceCents int32
	Quantity       int32
}

// CartSummary aggregates cart contents with calculated totals.
type CartSummary struct {
	Items         []CartItem
	SubtotalCents int32
	ItemCount     int
}

// CartService holds per-session cart state. Each session's cart has a single
// writer; mutations are discrete, complete replacements of one line.
type CartService interface {
	// GetOrCreate returns the session ID to use, minting a new session when
	// sessionID is empty or unknown.
	GetOrCreate(ctx context.Context, sessionID string) (string, error)

	// AddItem adds a line to the cart or increments quantity when the line
	// already exists.
	AddItem(ctx context.Context, sessionID string, item CartItem) (*CartSummary, error)

	// UpdateItemQuantity sets a line's quantity. Zero removes the line.
	UpdateItemQuantity(ctx context.Context, sessionID, lineID string, quantity int32) (*CartSummary, error)

	// RemoveItem removes a line from the cart.
	RemoveItem(ctx context.Context, sessionID, lineID string) (*CartSummary, error)

	// Summary returns the cart contents with totals.
	Summary(ctx context.Context, sessionID string) (*CartSummary, error)

	// Clear removes all lines from the cart.
	Clear(ctx context.Context, sessionID string) error
}

// Cart-specific errors.
var (
	ErrCartNotFound    = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be at least 1"}
)
