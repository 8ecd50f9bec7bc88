package app

import (
	"catalog/domain"
	"context"
)

// CategoryRepository persists categories. Ids are assigned by NextIdentifier before Save.
type CategoryRepository interface {
	Save(ctx context.Context, category *domain.Category) error
	ListAll(ctx context.Context) ([]domain.Category, error)
	// GetByID returns nil, nil when no category has the id.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	NextIdentifier(ctx context.Context) (int64, error)
	// Update overwrites the name. A missing row is a silent no-op.
	Update(ctx context.Context, category *domain.Category) error
}

// ItemRepository persists items together with their category links.
//
// Save and Update resolve item.CategoryIDs against existing categories, drop the ids that
// do not resolve and rewrite item.CategoryIDs with the linked set. The caller owns the item
// for the duration of the call.
type ItemRepository interface {
	Save(ctx context.Context, item *domain.Item) error
	ListAll(ctx context.Context) ([]domain.Item, error)
	// GetByID returns nil, nil when no item has the id.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	NextIdentifier(ctx context.Context) (int64, error)
	// Update replaces the name and the whole category set. A missing row is a silent no-op.
	Update(ctx context.Context, item *domain.Item) error
	// Delete returns domain.ErrItemNotFound when no item has the id.
	Delete(ctx context.Context, id int64) error
}
