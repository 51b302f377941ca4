// Package web renders the server-side HTML pages from an embedded template
// set. Handlers pass a Page; everything else (escaping, layout) lives here.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names, matching templates/<name>.html
const (
	PageIndex      = "index"
	PageSignup     = "signup"
	PageLogin      = "login"
	PageDashboard  = "dashboard"
	PageItemForm   = "item_form"
	PageItemDelete = "item_delete"
	PageItemFilter = "item_filter"
)

// Page is the context passed to every template.
type Page struct {
	Title string
	User  *domain.User

	// Flash is the transient message queued by a previous request, if any.
	FlashLevel   string
	FlashMessage string

	// Warning is computed per render, independent of any queued flash, so
	// both can appear on the same page.
	Warning string

	// Form state for signup/login/item forms.
	Errors map[string]string
	Form   any

	// Item listings.
	Items       []domain.InventoryItem
	LowStockIDs map[int64]bool
	Query       string

	// Item form extras.
	Categories []domain.Category
	Item       *domain.InventoryItem
}

// Renderer renders named pages over a shared base layout.
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	// title renders category names in display casing.
	"title": cases.Title(language.English).String,
}

// NewRenderer parses the embedded templates. Each page template is parsed
// together with the base layout so pages can override its blocks.
func NewRenderer() (*Renderer, error) {
	names := []string{
		PageIndex, PageSignup, PageLogin, PageDashboard,
		PageItemForm, PageItemDelete, PageItemFilter,
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.New("base.html").
			Funcs(templateFuncs).
			ParseFS(templatesFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page with the given status. The page is rendered
// to a buffer first so a template fault becomes a 500 instead of a torn page.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, page Page) {
	tmpl, ok := r.pages[name]
	if !ok {
		logger.FromContext(req.Context()).Error("Unknown template", "name", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", page); err != nil {
		logger.FromContext(req.Context()).Error("Failed to render template", "name", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(req.Context()).Error("Failed to write response", "error", err)
	}
}
