package store

import (
	"catalog/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Save inserts the category under its current id. The id must come from NextIdentifier.
func (s *CategoryStore) Save(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (category_id, category_name) VALUES (:category_id, :category_name)`

	if _, err := s.db.NamedExecContext(ctx, query, category); err != nil {
		return fmt.Errorf("failed to insert category %d: %w", category.ID, err)
	}
	return nil
}

func (s *CategoryStore) ListAll(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0)
	query := `SELECT category_id, category_name FROM categories ORDER BY category_id`

	if err := s.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	query := s.db.Rebind(`SELECT category_id, category_name FROM categories WHERE category_id = ?`)

	err := s.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &c, nil
}

// NextIdentifier returns max(category_id)+1, or 1 on an empty table. Two callers racing
// before either saves get the same id; the second Save then fails on the primary key.
func (s *CategoryStore) NextIdentifier(ctx context.Context) (int64, error) {
	var next int64
	query := `SELECT COALESCE(MAX(category_id), 0) + 1 FROM categories`

	if err := s.db.GetContext(ctx, &next, query); err != nil {
		return 0, fmt.Errorf("failed to compute next category id: %w", err)
	}
	return next, nil
}

func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	query := s.db.Rebind(`UPDATE categories SET category_name = ? WHERE category_id = ?`)

	res, err := s.db.ExecContext(ctx, query, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		zap.L().Debug("Category update skipped, no such row", zap.Int64("categoryId", category.ID))
	}
	return nil
}
