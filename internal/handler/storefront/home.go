package storefront

import (
	"log/slog"
	"net/http"

	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/DevAttaKhan/dawn/internal/handler"
)

// HomeHandler handles the storefront homepage
type HomeHandler struct {
	catalogService domain.CatalogService
	renderer       *handler.Renderer
	logger         *slog.Logger
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(catalogService domain.CatalogService, renderer *handler.Renderer, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		catalogService: catalogService,
		renderer:       renderer,
		logger:         logger,
	}
}

// ServeHTTP handles GET /
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	featured, err := h.catalogService.FeaturedProducts(ctx, 4)
	if err != nil {
		h.logger.Error("failed to load featured products", "error", err)
		featured = nil
	}

	collections, err := h.catalogService.FeaturedCollections(ctx, 3)
	if err != nil {
		h.logger.Error("failed to load featured collections", "error", err)
		collections = nil
	}

	data := BaseTemplateData(r)
	data["Title"] = StoreName
	data["FeaturedProducts"] = featured
	data["FeaturedCollections"] = collections

	h.renderer.RenderHTTP(w, "home", data)
}
