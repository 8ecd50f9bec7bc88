package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"
	"fmt"
	"strings"
)

type UpdateItemHandler struct {
	useCase        UseCase
	eventPublisher events.Publisher
	service        string
}

// UpdateItemRequest replaces the whole category set; an omitted category_ids clears it.
type UpdateItemRequest struct {
	ID          int64   `params:"id" json:"-"`
	Name        string  `json:"item_name" validate:"required,max=200"`
	CategoryIDs []int64 `json:"category_ids" validate:"dive,gt=0"`
}

type UpdateItemResponse = domain.Item

func NewUpdateItemHandler(useCase UseCase, eventPublisher events.Publisher, service string) *UpdateItemHandler {
	return &UpdateItemHandler{
		useCase:        useCase,
		eventPublisher: eventPublisher,
		service:        service,
	}
}

func (h UpdateItemHandler) Handle(ctx context.Context, req *UpdateItemRequest) (*UpdateItemResponse, error) {
	if req.ID <= 0 {
		return nil, notFound("update")
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req, "update"); err != nil {
		return nil, err
	}

	item, err := h.useCase.Update(ctx, req.ID, req.Name, req.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("update item %d: %w", req.ID, err)
	}
	if item == nil {
		return nil, notFound("update")
	}

	events.Emit(ctx, h.eventPublisher, h.service, events.ItemUpdatedEvent, itemPayload(item))

	return item, nil
}
