package validate

import (
	"errors"
	"fmt"
	"strings"

	"backend-socialhub/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var v = validator.New()

// Struct validates the request body and reports only the first failing field
// as a 400-level error.
func Struct(req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperr.New(fiber.StatusBadRequest, message(fieldErrs[0]))
	}
	return apperr.New(fiber.StatusBadRequest, err.Error())
}

func message(fe validator.FieldError) string {
	field := jsonName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, fe.Param())
	}
	return fmt.Sprintf("%q is invalid", field)
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
