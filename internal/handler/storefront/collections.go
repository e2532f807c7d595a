package storefront

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/DevAttaKhan/dawn/internal/handler"
)

// CollectionHandler handles collection browsing routes
type CollectionHandler struct {
	catalogService domain.CatalogService
	renderer       *handler.Renderer
	logger         *slog.Logger
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(catalogService domain.CatalogService, renderer *handler.Renderer, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		catalogService: catalogService,
		renderer:       renderer,
		logger:         logger,
	}
}

// List handles GET /collections
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := domain.CollectionFilter{
		Search: strings.TrimSpace(q.Get("q")),
		Sort:   domain.ParseSortKey(q.Get("sortBy")),
	}
	if page, err := strconv.ParseInt(q.Get("page"), 10, 32); err == nil && page > 0 {
		filter.Page = int32(page)
	}

	page, err := h.catalogService.ListCollections(ctx, filter)
	if err != nil {
		h.logger.Error("failed to list collections", "error", err)
		http.Error(w, "Failed to load collections", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Title"] = "Collections"
	data["Collections"] = page.Items
	data["Total"] = page.Total
	data["Page"] = page.Page
	data["HasPrev"] = page.Page > 1
	data["HasNext"] = int64(page.Page)*int64(page.PageSize) < page.Total

	h.renderer.RenderHTTP(w, "collections", data)
}

// Detail handles GET /collections/{handle}: the collection header plus its
// products, filtered and sorted like the main listing.
func (h *CollectionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	handle := r.PathValue("handle")
	if handle == "" {
		http.NotFound(w, r)
		return
	}

	collection, err := h.catalogService.GetCollection(ctx, handle)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to load collection", "handle", handle, "error", err)
		http.Error(w, "Failed to load collection", http.StatusInternalServerError)
		return
	}

	filter := parseProductFilter(r)
	filter.CollectionID = collection.ID

	page, err := h.catalogService.ListProducts(ctx, filter)
	if err != nil {
		h.logger.Error("failed to list collection products", "handle", handle, "error", err)
		http.Error(w, "Failed to load collection", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Title"] = collection.Name
	data["Collection"] = collection
	data["Products"] = page.Items
	data["Total"] = page.Total
	data["Page"] = page.Page
	data["HasPrev"] = page.Page > 1
	data["HasNext"] = int64(page.Page)*int64(page.PageSize) < page.Total

	h.renderer.RenderHTTP(w, "collection", data)
}
