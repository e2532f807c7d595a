package storefront

import (
	"net/http"

	"github.com/DevAttaKhan/dawn/internal/cookie"
)

// CartCookieMaxAge matches the cart TTL so the cookie and the server-side
// cart expire together.
const CartCookieMaxAge = 30 * 24 * 60 * 60

// GetSessionIDFromCookie retrieves the cart session ID from the request.
// Returns empty string if the cookie is not present.
func GetSessionIDFromCookie(r *http.Request) string {
	return cookie.Get(r, cookie.CartCookieName)
}

// SetSessionCookie sets the cart session cookie.
func SetSessionCookie(w http.ResponseWriter, sessionID string, cfg *cookie.Config) {
	cfg.SetSession(w, cookie.CartCookieName, sessionID, CartCookieMaxAge)
}
