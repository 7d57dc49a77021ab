package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Custom tags:
//
//	decimal      value is an unsigned decimal string
//	dec_gt=N     decimal string strictly above N
//	dec_gte=N    decimal string at least N
//	dec_lte=N    decimal string at most N
//	dec_between=A B  decimal string within [A, B]
const (
	TagDecimal = "decimal"
	TagDecGT   = "dec_gt"
	TagDecGTE  = "dec_gte"
	TagDecLTE  = "dec_lte"

	TagDecBetween = "dec_between"
)

// RegisterWithGin installs the custom rules into gin's binding validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validation: unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

// Register installs the custom rules and JSON field naming into v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		TagDecimal: func(fl validator.FieldLevel) bool {
			return IsDecimal(fl.Field().String())
		},
		TagDecGT:  compareRule(Above),
		TagDecGTE: compareRule(func(v, p decimal.Decimal) bool { return v.GreaterThanOrEqual(p) }),
		TagDecLTE: compareRule(func(v, p decimal.Decimal) bool { return v.LessThanOrEqual(p) }),

		TagDecBetween: betweenRule,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validation: register %s: %w", tag, err)
		}
	}
	return nil
}

// compareRule builds a rule comparing the field against the tag parameter.
// Non-decimal values fail so that the message of the first failing tag wins.
func compareRule(cmp func(value, param decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if !IsDecimal(raw) {
			return false
		}
		value, err := ParseDecimal(raw)
		if err != nil {
			return false
		}
		param, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(value, param)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

func betweenRule(fl validator.FieldLevel) bool {
	bounds := strings.Fields(fl.Param())
	if len(bounds) != 2 || !IsDecimal(fl.Field().String()) {
		return false
	}
	lo, err := decimal.NewFromString(bounds[0])
	if err != nil {
		return false
	}
	hi, err := decimal.NewFromString(bounds[1])
	if err != nil {
		return false
	}
	value, err := ParseDecimal(fl.Field().String())
	if err != nil {
		return false
	}
	return Between(value, lo, hi)
}
