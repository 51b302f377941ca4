package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// CategoryRepository implements the category repository for PostgreSQL
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListCategories returns all categories ordered by name
func (r *CategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, category_name
		FROM categories
		ORDER BY category_name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByID finds a category by ID
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `
		SELECT category_id, category_name
		FROM categories
		WHERE category_id = $1
	`
	var c domain.Category
	err := r.db.QueryRow(ctx, query, categoryID).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrCategoryNotFound, categoryID)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}
