package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DevAttaKhan/dawn/internal/domain"
)

// DefaultCartTTL is how long an untouched cart survives before the janitor
// sweeps it.
const DefaultCartTTL = 30 * 24 * time.Hour

const janitorInterval = time.Hour

type cartState struct {
	items      []domain.CartItem
	lastAccess time.Time
}

// CartService keeps per-session carts in memory. All access goes through a
// single mutex, so each cart sees mutations one at a time.
type CartService struct {
	mu     sync.Mutex
	carts  map[string]*cartState
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
	done   chan struct{}
}

// NewCartService creates an in-memory CartService and starts its expiry
// janitor. Call Close to stop the janitor.
func NewCartService(ttl time.Duration, logger *slog.Logger) *CartService {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}

	s := &CartService{
		carts:  make(map[string]*cartState),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
		done:   make(chan struct{}),
	}

	go s.janitor()

	return s
}

var _ domain.CartService = (*CartService)(nil)

// Close stops the expiry janitor.
func (s *CartService) Close() {
	close(s.done)
}

func (s *CartService) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CartService) sweep() {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired int
	for id, cart := range s.carts {
		if cart.lastAccess.Before(cutoff) {
			delete(s.carts, id)
			expired++
		}
	}
	remaining := len(s.carts)
	s.mu.Unlock()

	if expired > 0 {
		s.logger.Info("swept expired carts", "expired", expired, "remaining", remaining)
	}
}

// GetOrCreate returns the session ID to use, minting a new session when
// sessionID is empty or unknown.
func (s *CartService) GetOrCreate(ctx context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if cart, ok := s.carts[sessionID]; ok {
			cart.lastAccess = s.now()
			return sessionID, nil
		}
	}

	newID, err := GenerateSessionID()
	if err != nil {
		return "", fmt.Errorf("failed to create cart session: %w", err)
	}

	s.carts[newID] = &cartState{lastAccess: s.now()}
	return newID, nil
}

// AddItem adds a line to the cart or increments quantity when the line
// already exists. The cart is created if the session has none yet.
func (s *CartService) AddItem(ctx context.Context, sessionID string, item domain.CartItem) (*domain.CartSummary, error) {
	if item.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if item.LineID == "" {
		return nil, domain.Invalid("cart.add", "Cart line is missing an identifier")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &cartState{}
		s.carts[sessionID] = cart
	}
	cart.lastAccess = s.now()

	merged := false
	for i := range cart.items {
		if cart.items[i].LineID == item.LineID {
			cart.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.items = append(cart.items, item)
	}

	return summarize(cart.items), nil
}

// UpdateItemQuantity sets a line's quantity. Zero removes the line.
func (s *CartService) UpdateItemQuantity(ctx context.Context, sessionID, lineID string, quantity int32) (*domain.CartSummary, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	cart.lastAccess = s.now()

	for i := range cart.items {
		if cart.items[i].LineID == lineID {
			if quantity == 0 {
				cart.items = append(cart.items[:i], cart.items[i+1:]...)
			} else {
				cart.items[i].Quantity = quantity
			}
			return summarize(cart.items), nil
		}
	}

	return nil, domain.NotFound("cart.update", "cart line", lineID)
}

// RemoveItem removes a line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, lineID string) (*domain.CartSummary, error) {
	return s.UpdateItemQuantity(ctx, sessionID, lineID, 0)
}

// Summary returns the cart contents with totals. Unknown sessions get an
// empty summary so the cart page renders after a restart.
func (s *CartService) Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return &domain.CartSummary{}, nil
	}
	cart.lastAccess = s.now()

	return summarize(cart.items), nil
}

// Clear removes all lines from the cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[sessionID]; ok {
		cart.items = nil
		cart.lastAccess = s.now()
	}
	return nil
}

func summarize(items []domain.CartItem) *domain.CartSummary {
	summary := &domain.CartSummary{
		Items: make([]domain.CartItem, len(items)),
	}
	copy(summary.Items, items)

	for _, item := range items {
		summary.SubtotalCents += item.UnitPriceCents * item.Quantity
		summary.ItemCount += int(item.Quantity)
	}
	return summary
}
