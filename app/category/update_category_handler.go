package category

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"
	"fmt"
	"strings"
	"time"
)

type UpdateCategoryHandler struct {
	useCase        UseCase
	eventPublisher events.Publisher
	service        string
}

type UpdateCategoryRequest struct {
	ID   int64  `params:"id" json:"-"`
	Name string `json:"category_name" validate:"required,max=100"`
}

type UpdateCategoryResponse = domain.Category

func NewUpdateCategoryHandler(useCase UseCase, eventPublisher events.Publisher, service string) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{
		useCase:        useCase,
		eventPublisher: eventPublisher,
		service:        service,
	}
}

func (h UpdateCategoryHandler) Handle(ctx context.Context, req *UpdateCategoryRequest) (*UpdateCategoryResponse, error) {
	if req.ID <= 0 {
		return nil, notFound("update")
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req, "update"); err != nil {
		return nil, err
	}

	category, err := h.useCase.Update(ctx, req.ID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", req.ID, err)
	}
	if category == nil {
		return nil, notFound("update")
	}

	events.Emit(ctx, h.eventPublisher, h.service, events.CategoryUpdatedEvent, events.CategoryPayload{
		ID:   category.ID,
		Name: category.Name,
		At:   time.Now().UTC(),
	})

	return category, nil
}
