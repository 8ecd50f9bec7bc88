package item

import (
	"catalog/domain"
	"context"
	"fmt"
)

type GetItemsHandler struct {
	useCase UseCase
}

func NewGetItemsHandler(useCase UseCase) *GetItemsHandler {
	return &GetItemsHandler{
		useCase: useCase,
	}
}

type GetItemsRequest struct{}

type GetItemsResponse []domain.Item

func (h GetItemsHandler) Handle(ctx context.Context, _ *GetItemsRequest) (*GetItemsResponse, error) {
	items, err := h.useCase.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	res := GetItemsResponse(items)
	return &res, nil
}
