package repository

import (
	"context"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// Item defines the interface for inventory item persistence.
// List and filter results are ordered by item_id ascending.
type Item interface {
	CreateItem(ctx context.Context, item *domain.InventoryItem) error
	GetItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	DeleteItem(ctx context.Context, itemID int64) error
	ListItemsByUser(ctx context.Context, userID int64) ([]domain.InventoryItem, error)
	FilterItemsByName(ctx context.Context, userID int64, name string) ([]domain.InventoryItem, error)
}

// Category defines the interface for category persistence
type Category interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
}
