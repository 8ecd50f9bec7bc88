package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateRequest(req any, action string) error {
	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return httperror.BadRequest(
				"item."+action+".validation_failed",
				"Validation failed for the request",
				ve.Error(),
			)
		}

		return httperror.InternalServerError(
			"item."+action+".validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}
	return nil
}

func notFound(action string) error {
	return httperror.NotFound(
		"item."+action+".not_found",
		"Item not found",
		nil,
	)
}

func itemPayload(item *domain.Item) events.ItemPayload {
	return events.ItemPayload{
		ID:          item.ID,
		Name:        item.Name,
		CategoryIDs: item.CategoryIDs,
		At:          time.Now().UTC(),
	}
}
