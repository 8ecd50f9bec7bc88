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

type ItemStore struct {
	db *sqlx.DB
}

func NewItemStore(db *sqlx.DB) *ItemStore {
	return &ItemStore{db: db}
}

// itemRow is one line of the items LEFT JOIN item_category projection.
type itemRow struct {
	ID         int64         `db:"item_id"`
	Name       string        `db:"item_name"`
	CategoryID sql.NullInt64 `db:"category_id"`
}

const selectItemsWithCategories = `
	SELECT i.item_id, i.item_name, ic.category_id
	FROM items i
	LEFT JOIN item_category ic ON ic.item_id = i.item_id`

// Save inserts the item and its links to the categories that exist. Unknown category ids
// are dropped and item.CategoryIDs is rewritten with the linked set.
func (s *ItemStore) Save(ctx context.Context, item *domain.Item) error {
	var linked []int64

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		resolved, err := resolveCategoryIDs(ctx, tx, item.UniqueCategoryIDs())
		if err != nil {
			return err
		}

		query := `INSERT INTO items (item_id, item_name) VALUES (:item_id, :item_name)`
		if _, err := tx.NamedExecContext(ctx, query, item); err != nil {
			return fmt.Errorf("failed to insert item %d: %w", item.ID, err)
		}

		if err := insertLinks(ctx, tx, item.ID, resolved); err != nil {
			return err
		}

		linked = resolved
		return nil
	})
	if err != nil {
		return err
	}

	item.CategoryIDs = linked
	return nil
}

func (s *ItemStore) ListAll(ctx context.Context) ([]domain.Item, error) {
	var rows []itemRow
	query := selectItemsWithCategories + ` ORDER BY i.item_id, ic.category_id`

	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return collectItems(rows), nil
}

func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var rows []itemRow
	query := s.db.Rebind(selectItemsWithCategories + ` WHERE i.item_id = ? ORDER BY ic.category_id`)

	if err := s.db.SelectContext(ctx, &rows, query, id); err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	items := collectItems(rows)
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// NextIdentifier returns max(item_id)+1, or 1 on an empty table. Not safe for concurrent
// writers: see CategoryStore.NextIdentifier.
func (s *ItemStore) NextIdentifier(ctx context.Context) (int64, error) {
	var next int64
	query := `SELECT COALESCE(MAX(item_id), 0) + 1 FROM items`

	if err := s.db.GetContext(ctx, &next, query); err != nil {
		return 0, fmt.Errorf("failed to compute next item id: %w", err)
	}
	return next, nil
}

// Update overwrites the name and replaces the whole category set with the ids of
// item.CategoryIDs that resolve. item.CategoryIDs is rewritten with the linked set.
// Nothing happens when the item does not exist.
func (s *ItemStore) Update(ctx context.Context, item *domain.Item) error {
	var (
		found  bool
		linked []int64
	)

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		exists, err := itemExists(ctx, tx, item.ID)
		if err != nil || !exists {
			return err
		}
		found = true

		query := tx.Rebind(`UPDATE items SET item_name = ? WHERE item_id = ?`)
		if _, err := tx.ExecContext(ctx, query, item.Name, item.ID); err != nil {
			return fmt.Errorf("failed to update item %d: %w", item.ID, err)
		}

		resolved, err := resolveCategoryIDs(ctx, tx, item.UniqueCategoryIDs())
		if err != nil {
			return err
		}

		query = tx.Rebind(`DELETE FROM item_category WHERE item_id = ?`)
		if _, err := tx.ExecContext(ctx, query, item.ID); err != nil {
			return fmt.Errorf("failed to unlink categories of item %d: %w", item.ID, err)
		}

		if err := insertLinks(ctx, tx, item.ID, resolved); err != nil {
			return err
		}

		linked = resolved
		return nil
	})
	if err != nil {
		return err
	}

	if !found {
		zap.L().Debug("Item update skipped, no such row", zap.Int64("itemId", item.ID))
		return nil
	}

	item.CategoryIDs = linked
	return nil
}

// Delete removes the item; its junction rows go with it through ON DELETE CASCADE.
func (s *ItemStore) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		exists, err := itemExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("delete item %d: %w", id, domain.ErrItemNotFound)
		}

		query := tx.Rebind(`DELETE FROM items WHERE item_id = ?`)
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("failed to delete item %d: %w", id, err)
		}
		return nil
	})
}

func itemExists(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error) {
	var found int64
	query := tx.Rebind(`SELECT item_id FROM items WHERE item_id = ?`)

	err := tx.GetContext(ctx, &found, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load item %d: %w", id, err)
	}
	return true, nil
}

// resolveCategoryIDs keeps the ids that name an existing category, in ascending order.
func resolveCategoryIDs(ctx context.Context, tx *sqlx.Tx, ids []int64) ([]int64, error) {
	resolved := make([]int64, 0, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	query, args, err := sqlx.In(`SELECT category_id FROM categories WHERE category_id IN (?) ORDER BY category_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build category lookup: %w", err)
	}

	if err := tx.SelectContext(ctx, &resolved, tx.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to look up categories: %w", err)
	}

	if len(resolved) < len(ids) {
		zap.L().Debug("Dropping unknown category ids",
			zap.Int64s("requested", ids),
			zap.Int64s("resolved", resolved),
		)
	}
	return resolved, nil
}

func insertLinks(ctx context.Context, tx *sqlx.Tx, itemID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]domain.ItemCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		links = append(links, domain.ItemCategory{ItemID: itemID, CategoryID: categoryID})
	}

	query := `INSERT INTO item_category (item_id, category_id) VALUES (:item_id, :category_id)`
	if _, err := tx.NamedExecContext(ctx, query, links); err != nil {
		return fmt.Errorf("failed to link categories to item %d: %w", itemID, err)
	}
	return nil
}

// collectItems folds joined rows into items, keeping first-seen order.
func collectItems(rows []itemRow) []domain.Item {
	items := make([]domain.Item, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		pos, ok := index[row.ID]
		if !ok {
			pos = len(items)
			index[row.ID] = pos
			items = append(items, domain.Item{ID: row.ID, Name: row.Name, CategoryIDs: []int64{}})
		}
		if row.CategoryID.Valid {
			items[pos].CategoryIDs = append(items[pos].CategoryIDs, row.CategoryID.Int64)
		}
	}
	return items
}
