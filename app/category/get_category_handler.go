package category

import (
	"catalog/domain"
	"context"
	"fmt"
)

type GetCategoryHandler struct {
	useCase UseCase
}

func NewGetCategoryHandler(useCase UseCase) *GetCategoryHandler {
	return &GetCategoryHandler{
		useCase: useCase,
	}
}

type GetCategoryRequest struct {
	ID int64 `params:"id" json:"-"`
}

type GetCategoryResponse = domain.Category

func (h GetCategoryHandler) Handle(ctx context.Context, req *GetCategoryRequest) (*GetCategoryResponse, error) {
	if req.ID <= 0 {
		return nil, notFound("show")
	}

	category, err := h.useCase.Get(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", req.ID, err)
	}
	if category == nil {
		return nil, notFound("show")
	}

	return category, nil
}
