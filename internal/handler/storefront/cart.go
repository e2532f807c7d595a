package storefront

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/DevAttaKhan/dawn/internal/catalog"
	"github.com/DevAttaKhan/dawn/internal/cookie"
	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/DevAttaKhan/dawn/internal/handler"
)

// CartHandler handles all cart-related storefront routes
type CartHandler struct {
	cartService    domain.CartService
	catalogService domain.CatalogService
	renderer       *handler.Renderer
	cookies        *cookie.Config
	logger         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService domain.CartService, catalogService domain.CatalogService, renderer *handler.Renderer, cookies *cookie.Config, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		renderer:       renderer,
		cookies:        cookies,
		logger:         logger,
	}
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.cartService.Summary(ctx, GetSessionIDFromCookie(r))
	if err != nil {
		h.logger.Error("failed to load cart", "error", err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Title"] = "Cart"
	data["Summary"] = summary

	h.renderer.RenderHTTP(w, "cart", data)
}

// Add handles POST /cart/add. The form carries the product slug, the
// selection state, and a requested quantity. The variant is re-resolved
// server-side and the quantity clamped to its inventory before the line is
// written.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	slug := r.PostFormValue("slug")
	if slug == "" {
		http.Error(w, "Missing product", http.StatusBadRequest)
		return
	}

	requested, err := strconv.ParseInt(r.PostFormValue("quantity"), 10, 32)
	if err != nil || requested < 1 {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	product, err := h.catalogService.GetProductDetail(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to load product for cart", "slug", slug, "error", err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	offer := catalog.Resolve(product, selectionsFromValues(formSelectionValues(r.PostForm)))
	quantity := catalog.ClampQuantity(int32(requested), offer)
	if quantity == 0 {
		http.Error(w, "This item is sold out", http.StatusConflict)
		return
	}

	sessionID := GetSessionIDFromCookie(r)
	newSessionID, err := h.cartService.GetOrCreate(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to create cart session", "error", err)
		http.Error(w, "Cart error", http.StatusInternalServerError)
		return
	}
	if newSessionID != sessionID {
		SetSessionCookie(w, newSessionID, h.cookies)
	}

	if _, err := h.cartService.AddItem(ctx, newSessionID, cartLine(product, offer, quantity)); err != nil {
		h.logger.Error("failed to add cart item", "slug", slug, "error", err)
		http.Error(w, "Failed to add item", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Update handles POST /cart/update
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	lineID := r.PostFormValue("line_id")
	quantity, err := strconv.ParseInt(r.PostFormValue("quantity"), 10, 32)
	if err != nil || quantity < 0 {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	sessionID := GetSessionIDFromCookie(r)
	if sessionID == "" {
		http.Error(w, "No cart found", http.StatusNotFound)
		return
	}

	if _, err := h.cartService.UpdateItemQuantity(ctx, sessionID, lineID, int32(quantity)); err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.Error(w, "Cart line not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update cart item", "line_id", lineID, "error", err)
		http.Error(w, "Failed to update item", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Remove handles POST /cart/remove
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	sessionID := GetSessionIDFromCookie(r)
	if sessionID == "" {
		http.Error(w, "No cart found", http.StatusNotFound)
		return
	}

	lineID := r.PostFormValue("line_id")
	if _, err := h.cartService.RemoveItem(ctx, sessionID, lineID); err != nil && !domain.IsCode(err, domain.ENOTFOUND) {
		h.logger.Error("failed to remove cart item", "line_id", lineID, "error", err)
		http.Error(w, "Failed to remove item", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Clear handles POST /cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sessionID := GetSessionIDFromCookie(r); sessionID != "" {
		if err := h.cartService.Clear(ctx, sessionID); err != nil {
			h.logger.Error("failed to clear cart", "error", err)
			http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// formSelectionValues gathers selection pairs from form fields. The detail
// page posts one sel_<optionID> radio group per option; plain sel fields are
// accepted too.
func formSelectionValues(form url.Values) []string {
	var values []string
	for key, fieldValues := range form {
		if key == "sel" || strings.HasPrefix(key, "sel_") {
			values = append(values, fieldValues...)
		}
	}
	return values
}

// cartLine builds the cart line for a resolved offer. The line merges by
// variant identity, or product identity for products without variants.
func cartLine(p *domain.Product, offer catalog.Offer, quantity int32) domain.CartItem {
	item := domain.CartItem{
		LineID:         domain.UUIDString(p.ID),
		ProductID:      p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		UnitPriceCents: offer.PriceCents,
		Quantity:       quantity,
	}
	if offer.Variant != nil {
		item.LineID = domain.UUIDString(offer.Variant.ID)
		item.VariantID = offer.Variant.ID
	}
	for _, img := range p.Images {
		if img.IsPrimary {
			item.ImageURL = img.URL
			break
		}
	}
	if item.ImageURL == "" && len(p.Images) > 0 {
		item.ImageURL = p.Images[0].URL
	}
	return item
}
