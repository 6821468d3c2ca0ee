package handlers

import (
	"errors"

	apperrors "qualityhub-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// isValidationError reports whether the error came from request validation,
// either a typed field error or a validator.Struct failure wrapped by a service
func isValidationError(err error) bool {
	if apperrors.IsValidation(err) {
		return true
	}
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}
