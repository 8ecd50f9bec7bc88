package category

import (
	"catalog/domain"
	"context"
	"fmt"
)

type GetCategoriesHandler struct {
	useCase UseCase
}

func NewGetCategoriesHandler(useCase UseCase) *GetCategoriesHandler {
	return &GetCategoriesHandler{
		useCase: useCase,
	}
}

type GetCategoriesRequest struct{}

type GetCategoriesResponse []domain.Category

func (h GetCategoriesHandler) Handle(ctx context.Context, _ *GetCategoriesRequest) (*GetCategoriesResponse, error) {
	categories, err := h.useCase.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	res := GetCategoriesResponse(categories)
	return &res, nil
}
