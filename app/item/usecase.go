package item

import (
	"catalog/domain"
	"context"
)

// UseCase is the slice of app.ItemUseCase the handlers depend on.
type UseCase interface {
	Create(ctx context.Context, name string, categoryIDs []int64) (*domain.Item, error)
	Get(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, id int64, name string, categoryIDs []int64) (*domain.Item, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}
