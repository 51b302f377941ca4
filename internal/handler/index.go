package handler

import (
	"net/http"

	"github.com/osse101/Stockroom_Go/internal/web"
)

// HandleIndex renders the static landing page. No data access, no
// authentication required.
func HandleIndex(renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, web.PageIndex, basePage(w, r, ""))
	}
}
