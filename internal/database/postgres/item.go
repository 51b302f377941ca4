package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// ItemRepository implements the inventory item repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `item_id, item_name, quantity, category_id, user_id, created_at, updated_at`

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(&item.ID, &item.Name, &item.Quantity, &item.CategoryID,
		&item.UserID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a new item and fills in the assigned ID and timestamps
func (r *ItemRepository) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		INSERT INTO items (item_name, quantity, category_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING item_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, item.Name, item.Quantity, item.CategoryID, item.UserID).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: id %d", domain.ErrCategoryNotFound, item.CategoryID)
		}
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// GetItemByID finds an item by ID
func (r *ItemRepository) GetItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE item_id = $1`, itemColumns)
	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// UpdateItem updates the editable fields of an item. The owner is never
// reassigned here.
func (r *ItemRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		UPDATE items
		SET item_name = $1, quantity = $2, category_id = $3, updated_at = NOW()
		WHERE item_id = $4
	`
	tag, err := r.db.Exec(ctx, query, item.Name, item.Quantity, item.CategoryID, item.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: id %d", domain.ErrCategoryNotFound, item.CategoryID)
		}
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, item.ID)
	}
	return nil
}

// DeleteItem removes an item permanently
func (r *ItemRepository) DeleteItem(ctx context.Context, itemID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}

// ListItemsByUser returns all items owned by a user, ordered by item_id ascending
func (r *ItemRepository) ListItemsByUser(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE user_id = $1 ORDER BY item_id ASC`, itemColumns)
	return r.queryItems(ctx, query, userID)
}

// likeEscaper neutralizes LIKE metacharacters so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FilterItemsByName returns the user's items whose name contains the given
// substring, case-insensitively, ordered by item_id ascending. An empty name
// matches everything. The substring is matched literally: % and _ in the
// input are not wildcards.
func (r *ItemRepository) FilterItemsByName(ctx context.Context, userID int64, name string) ([]domain.InventoryItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM items
		WHERE user_id = $1 AND item_name ILIKE '%%' || $2 || '%%' ESCAPE '\'
		ORDER BY item_id ASC`, itemColumns)
	return r.queryItems(ctx, query, userID, likeEscaper.Replace(name))
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}
