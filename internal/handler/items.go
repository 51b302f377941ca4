package handler

import (
	"net/http"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/forms"
	"github.com/osse101/Stockroom_Go/internal/inventory"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/metrics"
	"github.com/osse101/Stockroom_Go/internal/repository"
	"github.com/osse101/Stockroom_Go/internal/web"
)

// renderItemForm renders the shared create/edit form with the full category
// list for the selection control.
func renderItemForm(w http.ResponseWriter, r *http.Request, renderer *web.Renderer,
	inventoryService inventory.Service, form forms.ItemForm, errs map[string]string,
	item *domain.InventoryItem) {

	categories, err := inventoryService.Categories(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load categories", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	title := "Add item"
	if item != nil {
		title = "Edit item"
	}
	page := basePage(w, r, title)
	page.Form = form
	page.Errors = errs
	page.Categories = categories
	page.Item = item
	renderer.Render(w, r, http.StatusOK, web.PageItemForm, page)
}

// HandleAddItemPage renders the item-creation form.
func HandleAddItemPage(inventoryService inventory.Service, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}
		renderItemForm(w, r, renderer, inventoryService, forms.ItemForm{}, map[string]string{}, nil)
	}
}

// HandleAddItem validates and persists a new item. The owner is always the
// requesting user; any client-supplied owner value is ignored.
func HandleAddItem(inventoryService inventory.Service, categories repository.Category, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		if !parseForm(w, r) {
			return
		}

		form := forms.ParseItemForm(r.PostForm)
		if errs := form.Validate(r.Context(), categories); len(errs) > 0 {
			renderItemForm(w, r, renderer, inventoryService, form, errs, nil)
			return
		}

		if _, err := inventoryService.CreateItem(r.Context(), user.ID, form); err != nil {
			logger.FromContext(r.Context()).Error("Failed to create item", "user_id", user.ID, "error", err)
			renderItemForm(w, r, renderer, inventoryService, form,
				map[string]string{"form": "Could not save the item, try again"}, nil)
			return
		}

		metrics.ItemsCreated.Inc()
		auth.SetFlash(w, auth.Flash{Level: auth.FlashInfo, Message: "Item added"})
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// loadOwnedItem fetches the routed item, enforcing ownership. Missing items
// and other users' items both surface as 404.
func loadOwnedItem(w http.ResponseWriter, r *http.Request, inventoryService inventory.Service, userID int64) (*domain.InventoryItem, bool) {
	itemID, err := itemIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	item, err := inventoryService.GetItem(r.Context(), userID, itemID)
	if err != nil {
		if notFoundForOwnership(err) {
			http.NotFound(w, r)
		} else {
			logger.FromContext(r.Context()).Error("Failed to load item", "item_id", itemID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return nil, false
	}
	return item, true
}

// HandleEditItemPage renders the item form pre-populated with the existing
// record's values.
func HandleEditItemPage(inventoryService inventory.Service, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		item, ok := loadOwnedItem(w, r, inventoryService, user.ID)
		if !ok {
			return
		}
		renderItemForm(w, r, renderer, inventoryService, forms.FromItem(*item), map[string]string{}, item)
	}
}

// HandleEditItem validates and applies an edit to an owned item. All editable
// fields update; the owner is never reassigned.
func HandleEditItem(inventoryService inventory.Service, categories repository.Category, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		item, ok := loadOwnedItem(w, r, inventoryService, user.ID)
		if !ok {
			return
		}
		if !parseForm(w, r) {
			return
		}

		form := forms.ParseItemForm(r.PostForm)
		if errs := form.Validate(r.Context(), categories); len(errs) > 0 {
			renderItemForm(w, r, renderer, inventoryService, form, errs, item)
			return
		}

		if err := inventoryService.UpdateItem(r.Context(), user.ID, item.ID, form); err != nil {
			logger.FromContext(r.Context()).Error("Failed to update item", "item_id", item.ID, "error", err)
			renderItemForm(w, r, renderer, inventoryService, form,
				map[string]string{"form": "Could not save the item, try again"}, item)
			return
		}

		metrics.ItemsUpdated.Inc()
		auth.SetFlash(w, auth.Flash{Level: auth.FlashInfo, Message: "Item updated"})
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// HandleDeleteItemPage renders the confirmation page showing the target item.
func HandleDeleteItemPage(inventoryService inventory.Service, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		item, ok := loadOwnedItem(w, r, inventoryService, user.ID)
		if !ok {
			return
		}

		page := basePage(w, r, "Delete item")
		page.Item = item
		renderer.Render(w, r, http.StatusOK, web.PageItemDelete, page)
	}
}

// HandleDeleteItem removes an owned item permanently. There is no soft-delete
// and no undo.
func HandleDeleteItem(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		itemID, err := itemIDParam(r)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		if err := inventoryService.DeleteItem(r.Context(), user.ID, itemID); err != nil {
			if notFoundForOwnership(err) {
				http.NotFound(w, r)
				return
			}
			logger.FromContext(r.Context()).Error("Failed to delete item", "item_id", itemID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		metrics.ItemsDeleted.Inc()
		auth.SetFlash(w, auth.Flash{Level: auth.FlashInfo, Message: "Item deleted"})
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// HandleItemFilter renders the user's items restricted by the optional name
// query parameter, case-insensitively. The low-inventory subset is
// highlighted exactly as on the dashboard, but no warning message is queued
// here; the asymmetry with the dashboard is intentional.
func HandleItemFilter(inventoryService inventory.Service, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		name := r.URL.Query().Get("name")
		metrics.FiltersPerformed.Inc()

		view, err := inventoryService.Filter(r.Context(), user.ID, name)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to filter items", "user_id", user.ID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		page := basePage(w, r, "Search items")
		page.Items = view.Items
		page.LowStockIDs = view.LowStockIDs
		page.Query = view.Query
		renderer.Render(w, r, http.StatusOK, web.PageItemFilter, page)
	}
}
