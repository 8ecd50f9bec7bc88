package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"
	"errors"
	"fmt"
	"strings"
)

type RenameItemHandler struct {
	useCase        UseCase
	eventPublisher events.Publisher
	service        string
}

type RenameItemRequest struct {
	ID   int64  `params:"id" json:"-"`
	Name string `json:"item_name" validate:"required,max=200"`
}

type RenameItemResponse = domain.Item

func NewRenameItemHandler(useCase UseCase, eventPublisher events.Publisher, service string) *RenameItemHandler {
	return &RenameItemHandler{
		useCase:        useCase,
		eventPublisher: eventPublisher,
		service:        service,
	}
}

func (h RenameItemHandler) Handle(ctx context.Context, req *RenameItemRequest) (*RenameItemResponse, error) {
	if req.ID <= 0 {
		return nil, notFound("rename")
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req, "rename"); err != nil {
		return nil, err
	}

	item, err := h.useCase.UpdateName(ctx, req.ID, req.Name)
	if errors.Is(err, domain.ErrItemNotFound) {
		return nil, notFound("rename")
	}
	if err != nil {
		return nil, fmt.Errorf("rename item %d: %w", req.ID, err)
	}

	events.Emit(ctx, h.eventPublisher, h.service, events.ItemUpdatedEvent, itemPayload(item))

	return item, nil
}
