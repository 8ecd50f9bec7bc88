package events

import "time"

const (
	CatalogExchange = "catalog.events"
	ImportExchange  = "catalog.import"
)

const (
	CategoryCreatedEvent = "category.created"
	CategoryUpdatedEvent = "category.updated"
	ItemCreatedEvent     = "item.created"
	ItemUpdatedEvent     = "item.updated"
	ItemDeletedEvent     = "item.deleted"

	CategoryImportEvent = "category.import"
	ItemImportEvent     = "item.import"
)

const (
	EventVersionV1 = "v1"
)

type CategoryPayload struct {
	ID   int64     `json:"categoryId"`
	Name string    `json:"categoryName"`
	At   time.Time `json:"at"`
}

type ItemPayload struct {
	ID          int64     `json:"itemId"`
	Name        string    `json:"itemName"`
	CategoryIDs []int64   `json:"categoryIds"`
	At          time.Time `json:"at"`
}

type ItemDeletedPayload struct {
	ID        int64     `json:"itemId"`
	DeletedAt time.Time `json:"deletedAt"`
}

// CategoryImportPayload and ItemImportPayload arrive on ImportExchange from upstream feeds.
type CategoryImportPayload struct {
	Name string `json:"categoryName" validate:"required,max=100"`
}

type ItemImportPayload struct {
	Name        string  `json:"itemName" validate:"required,max=200"`
	CategoryIDs []int64 `json:"categoryIds" validate:"dive,gt=0"`
}
