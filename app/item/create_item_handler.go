package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"
	"fmt"
	"strings"
)

type CreateItemHandler struct {
	useCase        UseCase
	eventPublisher events.Publisher
	service        string
}

type CreateItemRequest struct {
	Name        string  `json:"item_name" validate:"required,max=200"`
	CategoryIDs []int64 `json:"category_ids" validate:"dive,gt=0"`
}

type CreateItemResponse = domain.Item

func NewCreateItemHandler(useCase UseCase, eventPublisher events.Publisher, service string) *CreateItemHandler {
	return &CreateItemHandler{
		useCase:        useCase,
		eventPublisher: eventPublisher,
		service:        service,
	}
}

func (h CreateItemHandler) Handle(ctx context.Context, req *CreateItemRequest) (*CreateItemResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req, "create"); err != nil {
		return nil, err
	}

	item, err := h.useCase.Create(ctx, req.Name, req.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	events.Emit(ctx, h.eventPublisher, h.service, events.ItemCreatedEvent, itemPayload(item))

	return item, nil
}
