package identity

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator applies the shape rules declared on input structs and reports the
// first violation as a validation error.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds a Validator that names fields by their JSON keys.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate returns nil when input satisfies its rules.
func (v *Validator) Validate(input any) error {
	err := v.v.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return validationError(err.Error())
	}
	return validationError(fieldMessage(verrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
