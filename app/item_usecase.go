package app

import (
	"catalog/domain"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ItemUseCase orchestrates item writes. Each method owns the entity it loads or builds until
// it returns it; the repository may rewrite CategoryIDs with the categories actually linked.
type ItemUseCase struct {
	repository ItemRepository
}

func NewItemUseCase(repository ItemRepository) *ItemUseCase {
	return &ItemUseCase{
		repository: repository,
	}
}

func (uc *ItemUseCase) Create(ctx context.Context, name string, categoryIDs []int64) (*domain.Item, error) {
	id, err := uc.repository.NextIdentifier(ctx)
	if err != nil {
		return nil, err
	}

	item, err := domain.NewItem(id, name, categoryIDs)
	if err != nil {
		return nil, err
	}

	if err := uc.repository.Save(ctx, item); err != nil {
		return nil, err
	}

	zap.L().Info("Item created",
		zap.Int64("itemId", item.ID),
		zap.Int64s("categoryIds", item.CategoryIDs),
	)
	return item, nil
}

// Get returns nil, nil when the item does not exist.
func (uc *ItemUseCase) Get(ctx context.Context, id int64) (*domain.Item, error) {
	return uc.repository.GetByID(ctx, id)
}

func (uc *ItemUseCase) List(ctx context.Context) ([]domain.Item, error) {
	return uc.repository.ListAll(ctx)
}

// Update replaces name and categories. It returns nil, nil when the item does not exist.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, name string, categoryIDs []int64) (*domain.Item, error) {
	item, err := uc.repository.GetByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}

	item.Name = name
	item.CategoryIDs = categoryIDs
	if err := uc.repository.Update(ctx, item); err != nil {
		return nil, err
	}

	zap.L().Info("Item updated",
		zap.Int64("itemId", item.ID),
		zap.Int64s("categoryIds", item.CategoryIDs),
	)
	return item, nil
}

// UpdateName renames the item and keeps its categories. Unlike Update it fails with
// domain.ErrItemNotFound when the item does not exist.
func (uc *ItemUseCase) UpdateName(ctx context.Context, id int64, name string) (*domain.Item, error) {
	item, err := uc.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("rename item %d: %w", id, domain.ErrItemNotFound)
	}

	item.Name = name
	if err := uc.repository.Update(ctx, item); err != nil {
		return nil, err
	}

	zap.L().Info("Item renamed", zap.Int64("itemId", item.ID))
	return item, nil
}

// Delete propagates domain.ErrItemNotFound from the repository.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repository.Delete(ctx, id); err != nil {
		return err
	}

	zap.L().Info("Item deleted", zap.Int64("itemId", id))
	return nil
}
