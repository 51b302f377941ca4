// Package handler contains one explicit handler per user-facing operation.
// Each handler composes the same steps: auth guard (applied at the router),
// validate-and-normalize, persistence call, response selection.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/web"
)

// basePage builds the common page context: the authenticated user when
// present, and any pending flash message (popping it consumes the cookie).
func basePage(w http.ResponseWriter, r *http.Request, title string) web.Page {
	page := web.Page{
		Title:       title,
		Errors:      map[string]string{},
		LowStockIDs: map[int64]bool{},
	}
	if user, ok := auth.UserFromContext(r.Context()); ok {
		page.User = user
	}
	if flash, ok := auth.PopFlash(w, r); ok {
		page.FlashLevel = flash.Level
		page.FlashMessage = flash.Message
	}
	return page
}

// currentUser returns the authenticated user placed by the auth middleware.
// Routes behind RequireUser always have one; a miss means a wiring bug.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Error("No user in context on protected route", "path", r.URL.Path)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return user, true
}

// itemIDParam parses the {itemID} route parameter.
func itemIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
}

// notFoundForOwnership reports whether the error should surface as a plain
// 404. Ownership mismatches deliberately look identical to missing items so
// guessing identifiers reveals nothing.
func notFoundForOwnership(err error) bool {
	return errors.Is(err, domain.ErrItemNotFound) || errors.Is(err, domain.ErrNotOwner)
}

// parseForm parses the POST body, responding with 400 on malformed bodies.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		logger.FromContext(r.Context()).Warn("Failed to parse form", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return false
	}
	return true
}
