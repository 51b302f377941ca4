package domain

import "time"

// InventoryItem is a stock record owned by exactly one user.
type InventoryItem struct {
	ID         int64     `json:"item_id" db:"item_id"`
	Name       string    `json:"name" db:"item_name"`
	Quantity   int       `json:"quantity" db:"quantity"`
	CategoryID int64     `json:"category_id" db:"category_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Category groups items for the selection control on the item form.
// Categories are seeded by migration and not editable through the app.
type Category struct {
	ID   int64  `json:"category_id" db:"category_id"`
	Name string `json:"name" db:"category_name"`
}

// LowStockIDs returns the set of item IDs whose quantity is at or below
// threshold. The presentation layer uses it to highlight low items.
func LowStockIDs(items []InventoryItem, threshold int) map[int64]bool {
	ids := make(map[int64]bool)
	for _, item := range items {
		if item.Quantity <= threshold {
			ids[item.ID] = true
		}
	}
	return ids
}
