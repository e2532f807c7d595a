package handler

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/DevAttaKhan/dawn/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

// TemplateFuncs returns a FuncMap with custom template functions
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int32) int32 {
			return a + b
		},
		"sub": func(a, b int32) int32 {
			return a - b
		},
		"year": func() int {
			return time.Now().Year()
		},
		"money": func(cents int32) string {
			return fmt.Sprintf("$%.2f", float64(cents)/100.0)
		},
		"moneyOpt": func(cents pgtype.Int4) string {
			if !cents.Valid {
				return ""
			}
			return fmt.Sprintf("$%.2f", float64(cents.Int32)/100.0)
		},
		"uuid": domain.UUIDString,
		"pageQuery": func(values url.Values, page int32) template.URL {
			q := url.Values{}
			for k, v := range values {
				q[k] = v
			}
			q.Set("page", strconv.FormatInt(int64(page), 10))
			return template.URL(q.Encode())
		},
	}
}
