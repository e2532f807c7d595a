package routes

import (
	"net/http"

	"github.com/DevAttaKhan/dawn/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for storefront routes
type StorefrontDeps struct {
	// Home
	HomeHandler http.Handler

	// Products (listing, detail, offer resolution)
	ProductHandler *storefront.ProductHandler

	// Collections
	CollectionHandler *storefront.CollectionHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Metrics exposes the Prometheus scrape endpoint
	MetricsHandler http.Handler

	// StaticDir is the filesystem path served under /static/
	StaticDir string
}
