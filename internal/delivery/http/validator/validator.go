// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an echo.Validator backed by go-playground/validator struct tags.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}
