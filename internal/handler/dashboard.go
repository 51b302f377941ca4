package handler

import (
	"net/http"

	"github.com/osse101/Stockroom_Go/internal/inventory"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/web"
)

// HandleDashboard renders the user's items ordered by identifier, with the
// low-inventory subset highlighted and a warning banner when that subset is
// non-empty. The warning does not displace a queued flash message.
func HandleDashboard(inventoryService inventory.Service, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		log := logger.WithUser(logger.FromContext(r.Context()), user.ID)

		view, err := inventoryService.Dashboard(r.Context(), user.ID)
		if err != nil {
			log.Error("Failed to load dashboard", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		page := basePage(w, r, "Dashboard")
		page.Items = view.Items
		page.LowStockIDs = view.LowStockIDs
		page.Warning = view.Warning
		renderer.Render(w, r, http.StatusOK, web.PageDashboard, page)
	}
}
