// Package inventory implements the item operations behind the dashboard and
// item handlers: owner-scoped listing, filtering, low-stock detection, and
// the create/update/delete lifecycle.
package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/forms"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/repository"
)

// Overview is the owner-scoped item listing rendered by the dashboard and
// filter pages. LowStockIDs lets the presentation layer highlight low items.
type Overview struct {
	Items       []domain.InventoryItem
	LowStockIDs map[int64]bool
	// Warning is the transient low-stock message for the dashboard; empty
	// when nothing is low.
	Warning string
	// Query echoes the filter's name parameter so the input control can
	// redisplay what was searched.
	Query string
}

// Service defines the interface for inventory operations
type Service interface {
	Dashboard(ctx context.Context, userID int64) (*Overview, error)
	Filter(ctx context.Context, userID int64, name string) (*Overview, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	CreateItem(ctx context.Context, userID int64, form forms.ItemForm) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, userID, itemID int64) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, userID, itemID int64, form forms.ItemForm) error
	DeleteItem(ctx context.Context, userID, itemID int64) error
}

type service struct {
	items       repository.Item
	categories  repository.Category
	lowQuantity int
}

// NewService creates the inventory service. lowQuantity is the stock
// threshold, injected once at construction and read-only thereafter.
func NewService(items repository.Item, categories repository.Category, lowQuantity int) Service {
	return &service{
		items:       items,
		categories:  categories,
		lowQuantity: lowQuantity,
	}
}

// Dashboard returns all of the user's items ordered by id, the low-stock id
// set, and the user-visible warning message when anything is low.
func (s *service) Dashboard(ctx context.Context, userID int64) (*Overview, error) {
	items, err := s.items.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lowIDs := domain.LowStockIDs(items, s.lowQuantity)
	return &Overview{
		Items:       items,
		LowStockIDs: lowIDs,
		Warning:     lowStockWarning(len(lowIDs)),
	}, nil
}

// Filter returns the user's items restricted to names containing the given
// substring, case-insensitively. An empty name returns everything. Unlike
// Dashboard it never produces a warning message; the filter page only
// highlights.
func (s *service) Filter(ctx context.Context, userID int64, name string) (*Overview, error) {
	var items []domain.InventoryItem
	var err error
	if name == "" {
		items, err = s.items.ListItemsByUser(ctx, userID)
	} else {
		items, err = s.items.FilterItemsByName(ctx, userID, name)
	}
	if err != nil {
		return nil, err
	}

	return &Overview{
		Items:       items,
		LowStockIDs: domain.LowStockIDs(items, s.lowQuantity),
		Query:       name,
	}, nil
}

// Categories returns the category list for the item form's selection control.
func (s *service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListCategories(ctx)
}

// CreateItem persists a new item. The owner is always the given user,
// regardless of anything the client submitted.
func (s *service) CreateItem(ctx context.Context, userID int64, form forms.ItemForm) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{
		Name:       form.Name,
		Quantity:   form.Quantity,
		CategoryID: form.CategoryID,
		UserID:     userID,
	}
	if err := s.items.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Item created",
		"item_id", item.ID, "user_id", userID, "quantity", item.Quantity)
	return item, nil
}

// GetItem fetches an item, verifying it belongs to the user.
func (s *service) GetItem(ctx context.Context, userID, itemID int64) (*domain.InventoryItem, error) {
	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotOwner, itemID)
	}
	return item, nil
}

// UpdateItem updates the editable fields of an item the user owns. The owner
// is never reassigned.
func (s *service) UpdateItem(ctx context.Context, userID, itemID int64, form forms.ItemForm) error {
	item, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	item.Name = form.Name
	item.Quantity = form.Quantity
	item.CategoryID = form.CategoryID
	if err := s.items.UpdateItem(ctx, *item); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Item updated", "item_id", itemID, "user_id", userID)
	return nil
}

// DeleteItem permanently removes an item the user owns.
func (s *service) DeleteItem(ctx context.Context, userID, itemID int64) error {
	if _, err := s.GetItem(ctx, userID, itemID); err != nil {
		return err
	}
	if err := s.items.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Item deleted", "item_id", itemID, "user_id", userID)
	return nil
}

// lowStockWarning phrases the dashboard warning: nothing, singular, or plural
// with the count.
func lowStockWarning(count int) string {
	switch {
	case count == 0:
		return ""
	case count == 1:
		return "1 item has low inventory"
	default:
		return fmt.Sprintf("%d items have low inventory", count)
	}
}
