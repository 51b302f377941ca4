package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// FakeItemRepository is a stateful in-memory implementation of
// repository.Item for integration-style unit tests.
type FakeItemRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.InventoryItem
}

func NewFakeItemRepository() *FakeItemRepository {
	return &FakeItemRepository{items: make(map[int64]domain.InventoryItem)}
}

func (f *FakeItemRepository) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	item.ID = f.nextID
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	f.items[item.ID] = *item
	return nil
}

func (f *FakeItemRepository) GetItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}
	return &item, nil
}

func (f *FakeItemRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[item.ID]; !ok {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, item.ID)
	}
	item.UpdatedAt = time.Now()
	f.items[item.ID] = item
	return nil
}

func (f *FakeItemRepository) DeleteItem(ctx context.Context, itemID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[itemID]; !ok {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}
	delete(f.items, itemID)
	return nil
}

func (f *FakeItemRepository) ListItemsByUser(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	return f.FilterItemsByName(ctx, userID, "")
}

func (f *FakeItemRepository) FilterItemsByName(ctx context.Context, userID int64, name string) ([]domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var items []domain.InventoryItem
	needle := strings.ToLower(name)
	for _, item := range f.items {
		if item.UserID != userID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// FakeCategoryRepository is a fixed in-memory implementation of
// repository.Category.
type FakeCategoryRepository struct {
	categories []domain.Category
}

func NewFakeCategoryRepository(categories ...domain.Category) *FakeCategoryRepository {
	if len(categories) == 0 {
		categories = []domain.Category{
			{ID: 1, Name: "general"},
			{ID: 2, Name: "electronics"},
		}
	}
	return &FakeCategoryRepository{categories: categories}
}

func (f *FakeCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

func (f *FakeCategoryRepository) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	for _, c := range f.categories {
		if c.ID == categoryID {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", domain.ErrCategoryNotFound, categoryID)
}
