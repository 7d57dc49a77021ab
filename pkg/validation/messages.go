package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages turns validator errors into field -> message pairs.
// Field keys are dotted JSON paths without the root struct, e.g. "price.amount".
func Messages(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		key := fieldPath(fe.Namespace())
		if _, exists := out[key]; exists {
			continue
		}
		out[key] = Message(fe)
	}
	return out
}

// Message returns the user-facing text for one failed rule.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		if fe.Param() == "1" {
			return "Required"
		}
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "email":
		return "Must be a valid email"
	case "url":
		return "Must be a URL"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "gte":
		if fe.Param() == "0" {
			return "Must be non-negative"
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case TagDecimal:
		return "Must be a number"
	case TagDecGT:
		if fe.Param() == "0" {
			return "Must be above zero"
		}
		return fmt.Sprintf("Must be above %s", fe.Param())
	case TagDecGTE:
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case TagDecLTE:
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case TagDecBetween:
		if b := strings.Fields(fe.Param()); len(b) == 2 {
			return fmt.Sprintf("Must be between %s and %s", b[0], b[1])
		}
		return "Out of range"
	default:
		return "Invalid value"
	}
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
