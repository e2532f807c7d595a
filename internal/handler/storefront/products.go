package storefront

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/DevAttaKhan/dawn/internal/catalog"
	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/DevAttaKhan/dawn/internal/handler"
	"github.com/jackc/pgx/v5/pgtype"
)

// ProductHandler handles product listing, detail, and offer routes
type ProductHandler struct {
	catalogService domain.CatalogService
	renderer       *handler.Renderer
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService domain.CatalogService, renderer *handler.Renderer, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		renderer:       renderer,
		logger:         logger,
	}
}

// List handles GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := parseProductFilter(r)

	page, err := h.catalogService.ListProducts(ctx, filter)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Title"] = "Products"
	data["Products"] = page.Items
	data["Total"] = page.Total
	data["Page"] = page.Page
	data["HasPrev"] = page.Page > 1
	data["HasNext"] = int64(page.Page)*int64(page.PageSize) < page.Total
	data["Search"] = filter.Search
	data["Sort"] = string(filter.Sort)

	h.renderer.RenderHTTP(w, "products", data)
}

// Detail handles GET /products/{slug}. The selection query parameters use
// the same sel=optionID:valueID form the offer endpoint accepts, so option
// links can be rendered server-side.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := r.PathValue("slug")
	if slug == "" {
		http.NotFound(w, r)
		return
	}

	product, err := h.catalogService.GetProductDetail(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to load product", "slug", slug, "error", err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	selections := parseSelections(r)
	if len(selections) == 0 {
		selections = catalog.InitialSelections(product)
	}
	offer := catalog.Resolve(product, selections)

	data := BaseTemplateData(r)
	data["Title"] = product.Name
	data["Product"] = product
	data["Options"] = optionViews(product, selections)
	data["Offer"] = offer

	h.renderer.RenderHTTP(w, "product", data)
}

// Offer handles GET /products/{slug}/offer. It re-resolves the variant for
// the given selections and returns the display bundle as JSON.
func (h *ProductHandler) Offer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := r.PathValue("slug")
	product, err := h.catalogService.GetProductDetail(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to load product", "slug", slug, "error", err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	offer := catalog.Resolve(product, parseSelections(r))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(offerPayload(offer)); err != nil {
		h.logger.Error("failed to encode offer", "slug", slug, "error", err)
	}
}

// OfferPayload is the JSON display bundle for one resolved selection state.
type OfferPayload struct {
	VariantID         string `json:"variantId,omitempty"`
	SKU               string `json:"sku,omitempty"`
	PriceCents        int32  `json:"priceCents"`
	CompareAtCents    *int32 `json:"compareAtCents,omitempty"`
	OnSale            bool   `json:"onSale"`
	SoldOut           bool   `json:"soldOut"`
	InventoryQuantity int32  `json:"inventoryQuantity"`
}

func offerPayload(offer catalog.Offer) OfferPayload {
	payload := OfferPayload{
		PriceCents:        offer.PriceCents,
		OnSale:            offer.OnSale,
		SoldOut:           offer.SoldOut,
		InventoryQuantity: offer.InventoryQuantity,
	}
	if offer.Variant != nil {
		payload.VariantID = domain.UUIDString(offer.Variant.ID)
	}
	if offer.SKU.Valid {
		payload.SKU = offer.SKU.String
	}
	if offer.CompareAtCents.Valid {
		compareAt := offer.CompareAtCents.Int32
		payload.CompareAtCents = &compareAt
	}
	return payload
}

// parseSelections reads repeated sel=optionID:valueID query parameters.
func parseSelections(r *http.Request) []domain.VariantSelection {
	return selectionsFromValues(r.URL.Query()["sel"])
}

// selectionsFromValues parses optionID:valueID pairs. Malformed entries are
// dropped; the resolver treats unknown IDs as non-matching anyway.
func selectionsFromValues(values []string) []domain.VariantSelection {
	var selections []domain.VariantSelection
	for _, raw := range values {
		optionRaw, valueRaw, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		optionID, err := domain.ParseUUID(optionRaw)
		if err != nil {
			continue
		}
		valueID, err := domain.ParseUUID(valueRaw)
		if err != nil {
			continue
		}
		selections = catalog.Select(selections, optionID, valueID)
	}
	return selections
}

// OptionView is an option with its values marked for the current selection.
type OptionView struct {
	ID     string
	Name   string
	Values []OptionValueView
}

// OptionValueView is one selectable value of an option.
type OptionValueView struct {
	ID       string
	Value    string
	Selected bool
}

func optionViews(p *domain.Product, selections []domain.VariantSelection) []OptionView {
	selected := make(map[pgtype.UUID]pgtype.UUID, len(selections))
	for _, sel := range selections {
		selected[sel.OptionID] = sel.ValueID
	}

	views := make([]OptionView, len(p.Options))
	for i, opt := range p.Options {
		view := OptionView{
			ID:     domain.UUIDString(opt.ID),
			Name:   opt.Name,
			Values: make([]OptionValueView, len(opt.Values)),
		}
		for j, val := range opt.Values {
			view.Values[j] = OptionValueView{
				ID:       domain.UUIDString(val.ID),
				Value:    val.Value,
				Selected: selected[opt.ID] == val.ID,
			}
		}
		views[i] = view
	}
	return views
}

func parseProductFilter(r *http.Request) domain.ProductFilter {
	q := r.URL.Query()

	filter := domain.ProductFilter{
		Search: strings.TrimSpace(q.Get("q")),
		Sort:   domain.ParseSortKey(q.Get("sortBy")),
	}

	for _, a := range q["availability"] {
		switch domain.Availability(a) {
		case domain.AvailabilityInStock, domain.AvailabilitySoldOut:
			filter.Availability = append(filter.Availability, domain.Availability(a))
		}
	}

	if cents, ok := parsePriceCents(q.Get("price_min")); ok {
		filter.PriceMinCents = pgtype.Int4{Int32: cents, Valid: true}
	}
	if cents, ok := parsePriceCents(q.Get("price_max")); ok {
		filter.PriceMaxCents = pgtype.Int4{Int32: cents, Valid: true}
	}

	if page, err := strconv.ParseInt(q.Get("page"), 10, 32); err == nil && page > 0 {
		filter.Page = int32(page)
	}

	return filter
}

// parsePriceCents converts a dollar amount query value ("49.99") to cents.
func parsePriceCents(s string) (int32, bool) {
	if s == "" {
		return 0, false
	}
	dollars, err := strconv.ParseFloat(s, 64)
	if err != nil || dollars < 0 {
		return 0, false
	}
	return int32(dollars*100 + 0.5), true
}
