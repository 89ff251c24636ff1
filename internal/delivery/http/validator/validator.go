// Package validator adapts go-playground validation to echo's Validator hook.
package validator

import (
	domainerrors "bizdir/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New is the constructor for CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the struct tags of the bound input. Failures surface as a
// validation AppError so the central error handler maps them to 400.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
