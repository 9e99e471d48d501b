package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidatorInit is returned when the custom binding rules cannot be registered.
var ErrValidatorInit = errors.New("validator initialization failed")

// RegisterValidators adds the custom rules used by request binding tags to
// gin's validator. Decimal fields are read directly by the rules; a custom
// type func for decimal.Decimal would recurse.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("%w: unexpected binding engine %T", ErrValidatorInit, binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(jsonTagName)
	if err := v.RegisterValidation("positive_decimal", positiveDecimal); err != nil {
		return fmt.Errorf("%w: failed to register 'positive_decimal': %w", ErrValidatorInit, err)
	}
	return nil
}

func jsonTagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func positiveDecimal(fl validator.FieldLevel) bool {
	switch value := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return value.IsPositive()
	case *decimal.Decimal:
		return value != nil && value.IsPositive()
	default:
		return false
	}
}

// ValidationMessages turns binding errors into one message per failed field,
// named by JSON key.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "positive_decimal":
		return name + " must be greater than zero"
	case "uuid":
		return name + " must be a UUID"
	case "min", "max", "alphanum":
		return name + " must be a 3 to 5 character alphanumeric code"
	default:
		return name + " is invalid"
	}
}
