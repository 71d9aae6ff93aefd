package service

import (
	"errors"
	"fmt"
	"reflect"

	"smapp/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// accountFields is the normalized form of CreateAccountInput.
type accountFields struct {
	Name        string `validate:"required,max=80"`
	Age         *int   `validate:"omitempty,min=0,max=150"`
	Nationality string `validate:"max=60"`
}

type postFields struct {
	Title       string `validate:"required,max=120"`
	Description string `validate:"required"`
}

type commentFields struct {
	Comment string `validate:"required"`
}

// validateStruct runs the struct's validate tags and reports the first
// failure as a validation error.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return models.NewValidationError(fieldMessage(fieldErrs[0]))
	}
	return models.NewValidationError(err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s too long (max %s characters)", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
