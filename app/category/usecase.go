package category

import (
	"catalog/domain"
	"context"
)

// UseCase is the slice of app.CategoryUseCase the handlers depend on.
type UseCase interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)
}
