package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/forms"
)

func TestNewRendererParsesAllPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	require.NotNil(t, r)
}

func render(t *testing.T, name string, page Page) *httptest.ResponseRecorder {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Render(w, req, http.StatusOK, name, page)
	return w
}

func TestRenderIndex(t *testing.T) {
	w := render(t, PageIndex, Page{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Stockroom")
	assert.Contains(t, w.Body.String(), "/signup")
}

func TestRenderDashboardHighlightsLowStock(t *testing.T) {
	items := []domain.InventoryItem{
		{ID: 1, Name: "widget", Quantity: 1},
		{ID: 2, Name: "gadget", Quantity: 50},
	}
	w := render(t, PageDashboard, Page{
		User:         &domain.User{ID: 1, Username: "alice"},
		Items:        items,
		LowStockIDs:  map[int64]bool{1: true},
		Warning:      "1 item has low inventory",
		FlashLevel:   "info",
		FlashMessage: "Item added",
	})

	body := w.Body.String()
	assert.Contains(t, body, "1 item has low inventory")
	assert.Contains(t, body, "Item added", "flash renders alongside the warning")
	assert.Contains(t, body, "low-stock")
	assert.Contains(t, body, "widget", "item names render exactly as entered")
	assert.Contains(t, body, "alice")
}

func TestRenderSignupWithErrors(t *testing.T) {
	w := render(t, PageSignup, Page{
		Form:   forms.RegisterForm{Username: "bob"},
		Errors: map[string]string{"password2": "Passwords do not match"},
	})

	body := w.Body.String()
	assert.Contains(t, body, `value="bob"`, "submitted values are preserved")
	assert.Contains(t, body, "Passwords do not match")
}

func TestRenderItemFormSelectsCategory(t *testing.T) {
	w := render(t, PageItemForm, Page{
		User: &domain.User{ID: 1, Username: "alice"},
		Form: forms.ItemForm{Name: "Widget", RawQuantity: "5", RawCategoryID: "2"},
		Categories: []domain.Category{
			{ID: 1, Name: "general"},
			{ID: 2, Name: "electronics"},
		},
		Errors: map[string]string{},
	})

	body := w.Body.String()
	assert.Contains(t, body, `value="2" selected`)
	assert.Contains(t, body, "Electronics")
}

func TestRenderFilterEchoesQuery(t *testing.T) {
	w := render(t, PageItemFilter, Page{
		User:        &domain.User{ID: 1, Username: "alice"},
		Items:       nil,
		LowStockIDs: map[int64]bool{},
		Query:       "widg",
	})

	assert.Contains(t, w.Body.String(), `value="widg"`)
	assert.Contains(t, w.Body.String(), "No items matched")
}

func TestRenderEscapesUserContent(t *testing.T) {
	w := render(t, PageItemFilter, Page{
		User:        &domain.User{ID: 1, Username: "alice"},
		LowStockIDs: map[int64]bool{},
		Query:       `<script>alert(1)</script>`,
	})

	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
}

func TestRenderUnknownPage(t *testing.T) {
	w := render(t, "nope", Page{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
