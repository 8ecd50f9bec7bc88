package category

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"
	"fmt"
	"strings"
	"time"
)

type CreateCategoryHandler struct {
	useCase        UseCase
	eventPublisher events.Publisher
	service        string
}

type CreateCategoryRequest struct {
	Name string `json:"category_name" validate:"required,max=100"`
}

type CreateCategoryResponse = domain.Category

func NewCreateCategoryHandler(useCase UseCase, eventPublisher events.Publisher, service string) *CreateCategoryHandler {
	return &CreateCategoryHandler{
		useCase:        useCase,
		eventPublisher: eventPublisher,
		service:        service,
	}
}

func (h CreateCategoryHandler) Handle(ctx context.Context, req *CreateCategoryRequest) (*CreateCategoryResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req, "create"); err != nil {
		return nil, err
	}

	category, err := h.useCase.Create(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	events.Emit(ctx, h.eventPublisher, h.service, events.CategoryCreatedEvent, events.CategoryPayload{
		ID:   category.ID,
		Name: category.Name,
		At:   time.Now().UTC(),
	})

	return category, nil
}
