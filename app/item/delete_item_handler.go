package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"context"
	"errors"
	"fmt"
	"time"
)

type DeleteItemHandler struct {
	useCase        UseCase
	eventPublisher events.Publisher
	service        string
}

func NewDeleteItemHandler(useCase UseCase, eventPublisher events.Publisher, service string) *DeleteItemHandler {
	return &DeleteItemHandler{
		useCase:        useCase,
		eventPublisher: eventPublisher,
		service:        service,
	}
}

type DeleteItemRequest struct {
	ID int64 `params:"id" json:"-"`
}

type DeleteItemResponse struct {
}

func (h DeleteItemHandler) Handle(ctx context.Context, req *DeleteItemRequest) (*DeleteItemResponse, error) {
	if req.ID <= 0 {
		return nil, notFound("destroy")
	}

	err := h.useCase.Delete(ctx, req.ID)
	if errors.Is(err, domain.ErrItemNotFound) {
		return nil, notFound("destroy")
	}
	if err != nil {
		return nil, fmt.Errorf("delete item %d: %w", req.ID, err)
	}

	events.Emit(ctx, h.eventPublisher, h.service, events.ItemDeletedEvent, events.ItemDeletedPayload{
		ID:        req.ID,
		DeletedAt: time.Now().UTC(),
	})

	return nil, httperror.NoContent(
		"item.destroy.success",
		"Item deleted successfully",
		nil,
	)
}
