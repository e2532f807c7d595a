package routes

import (
	"github.com/DevAttaKhan/dawn/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing storefront routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Home page. The {$} anchor keeps unknown paths out of the home handler.
	r.Get("/{$}", deps.HomeHandler.ServeHTTP)

	// Product browsing
	r.Get("/products", deps.ProductHandler.List)
	r.Get("/products/{slug}", deps.ProductHandler.Detail)
	r.Get("/products/{slug}/offer", deps.ProductHandler.Offer)

	// Collections
	r.Get("/collections", deps.CollectionHandler.List)
	r.Get("/collections/{handle}", deps.CollectionHandler.Detail)

	// Shopping cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/add", deps.CartHandler.Add)
	r.Post("/cart/update", deps.CartHandler.Update)
	r.Post("/cart/remove", deps.CartHandler.Remove)
	r.Post("/cart/clear", deps.CartHandler.Clear)

	// Operational endpoints
	if deps.MetricsHandler != nil {
		r.Handle("GET", "/metrics", deps.MetricsHandler)
	}
	if deps.StaticDir != "" {
		r.Static("/static", deps.StaticDir)
	}
}
