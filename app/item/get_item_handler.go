package item

import (
	"catalog/domain"
	"context"
	"fmt"
)

type GetItemHandler struct {
	useCase UseCase
}

func NewGetItemHandler(useCase UseCase) *GetItemHandler {
	return &GetItemHandler{
		useCase: useCase,
	}
}

type GetItemRequest struct {
	ID int64 `params:"id" json:"-"`
}

type GetItemResponse = domain.Item

func (h GetItemHandler) Handle(ctx context.Context, req *GetItemRequest) (*GetItemResponse, error) {
	if req.ID <= 0 {
		return nil, notFound("show")
	}

	item, err := h.useCase.Get(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", req.ID, err)
	}
	if item == nil {
		return nil, notFound("show")
	}

	return item, nil
}
