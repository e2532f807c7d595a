package handler

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
)

// Renderer manages template parsing and rendering with isolated template sets
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewRenderer parses the layout plus every page template under templatesDir.
// Each page gets its own clone of the layout so page-level blocks cannot
// collide.
func NewRenderer(templatesDir string, logger *slog.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template)

	layoutPath := filepath.Join(templatesDir, "layout.html")
	baseTmpl, err := template.New("base").Funcs(TemplateFuncs()).ParseFiles(layoutPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages, err := filepath.Glob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}

	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}

		pageTmpl, err := baseTmpl.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone template for %s: %w", page, err)
		}

		pageTmpl, err = pageTmpl.ParseFiles(page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", page, err)
		}

		pageName := filepath.Base(page)
		pageName = pageName[:len(pageName)-len(filepath.Ext(pageName))]
		templates[pageName] = pageTmpl
	}

	return &Renderer{
		templates: templates,
		logger:    logger,
	}, nil
}

// Execute returns a named template set
func (r *Renderer) Execute(name string) (*template.Template, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	return tmpl, nil
}

// Render executes a named template into an io.Writer
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, err := r.Execute(name)
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

// RenderHTTP renders a page to an http.ResponseWriter with error handling
func (r *Renderer) RenderHTTP(w http.ResponseWriter, name string, data any) {
	tmpl, err := r.Execute(name)
	if err != nil {
		r.logger.Error("template lookup failed", "template", name, "error", err)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		r.logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}
