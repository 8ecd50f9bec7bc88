package app

import (
	"catalog/domain"
	"context"

	"go.uber.org/zap"
)

type CategoryUseCase struct {
	repository CategoryRepository
}

func NewCategoryUseCase(repository CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		repository: repository,
	}
}

func (uc *CategoryUseCase) Create(ctx context.Context, name string) (*domain.Category, error) {
	id, err := uc.repository.NextIdentifier(ctx)
	if err != nil {
		return nil, err
	}

	category, err := domain.NewCategory(id, name)
	if err != nil {
		return nil, err
	}

	if err := uc.repository.Save(ctx, category); err != nil {
		return nil, err
	}

	zap.L().Info("Category created", zap.Int64("categoryId", category.ID))
	return category, nil
}

// Get returns nil, nil when the category does not exist.
func (uc *CategoryUseCase) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return uc.repository.GetByID(ctx, id)
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]domain.Category, error) {
	return uc.repository.ListAll(ctx)
}

// Update renames the category. It returns nil, nil when the category does not exist.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	category, err := uc.repository.GetByID(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}

	category.Name = name
	if err := uc.repository.Update(ctx, category); err != nil {
		return nil, err
	}

	zap.L().Info("Category updated", zap.Int64("categoryId", category.ID))
	return category, nil
}
