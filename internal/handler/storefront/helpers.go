package storefront

import (
	"net/http"
	"time"
)

// StoreName labels the storefront in page titles and the layout header.
const StoreName = "Dawn"

// BaseTemplateData returns common data for all templates
func BaseTemplateData(r *http.Request) map[string]any {
	return map[string]any{
		"StoreName": StoreName,
		"Year":      time.Now().Year(),
		"Path":      r.URL.Path,
		"Query":     r.URL.Query(),
	}
}
