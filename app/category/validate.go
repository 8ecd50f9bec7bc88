package category

import (
	"catalog/pkg/httperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateRequest(req any, action string) error {
	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return httperror.BadRequest(
				"category."+action+".validation_failed",
				"Validation failed for the request",
				ve.Error(),
			)
		}

		return httperror.InternalServerError(
			"category."+action+".validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}
	return nil
}

func notFound(action string) error {
	return httperror.NotFound(
		"category."+action+".not_found",
		"Category not found",
		nil,
	)
}
