package consumers

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ImportRoutingKeys are the bindings the import queue needs.
var ImportRoutingKeys = []string{
	events.CategoryImportEvent + "." + events.EventVersionV1,
	events.ItemImportEvent + "." + events.EventVersionV1,
}

type CategoryCreator interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
}

type ItemCreator interface {
	Create(ctx context.Context, name string, categoryIDs []int64) (*domain.Item, error)
}

// ImportEventHandler turns upstream import feed events into catalog entries.
type ImportEventHandler struct {
	categories CategoryCreator
	items      ItemCreator
	validate   *validator.Validate
}

func NewImportEventHandler(categories CategoryCreator, items ItemCreator) *ImportEventHandler {
	return &ImportEventHandler{
		categories: categories,
		items:      items,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *ImportEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	zap.L().Info("Import event received",
		zap.String("event", event.Event),
		zap.String("version", event.Version),
		zap.String("traceId", event.TraceID),
	)

	switch event.Event {
	case events.CategoryImportEvent:
		return h.importCategory(ctx, event)
	case events.ItemImportEvent:
		return h.importItem(ctx, event)
	default:
		zap.L().Warn("Unknown import event type", zap.String("event", event.Event))
		return nil
	}
}

func (h *ImportEventHandler) importCategory(ctx context.Context, event *events.Event) error {
	var payload events.CategoryImportPayload
	if err := event.DecodePayload(&payload); err != nil {
		return err
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if err := h.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", events.ErrMalformedPayload, err)
	}

	category, err := h.categories.Create(ctx, payload.Name)
	if err != nil {
		return fmt.Errorf("failed to import category: %w", err)
	}

	zap.L().Info("Category imported",
		zap.Int64("categoryId", category.ID),
		zap.String("traceId", event.TraceID),
	)
	return nil
}

func (h *ImportEventHandler) importItem(ctx context.Context, event *events.Event) error {
	var payload events.ItemImportPayload
	if err := event.DecodePayload(&payload); err != nil {
		return err
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if err := h.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", events.ErrMalformedPayload, err)
	}

	item, err := h.items.Create(ctx, payload.Name, payload.CategoryIDs)
	if err != nil {
		return fmt.Errorf("failed to import item: %w", err)
	}

	zap.L().Info("Item imported",
		zap.Int64("itemId", item.ID),
		zap.Int64s("categoryIds", item.CategoryIDs),
		zap.Int("requestedCategories", len(payload.CategoryIDs)),
		zap.String("traceId", event.TraceID),
	)
	return nil
}
