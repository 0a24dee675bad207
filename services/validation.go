package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether s is usable as a public item key.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// RegisterValidations adds the custom tags used by item forms to v and reports
// failures under json field names. The router also installs it on gin's binding engine.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return ValidSlug(fl.Field().String())
	})
}

var structValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// validateStruct converts validator failures into a ValidationError keyed by json field name.
func validateStruct(s interface{}) *ValidationError {
	err := structValidator.Struct(s)
	if err == nil {
		return &ValidationError{}
	}
	return ValidationErrorFrom(err)
}

// ValidationErrorFrom converts a binding or validator error into a ValidationError.
// Errors that do not name fields are reported under "form".
func ValidationErrorFrom(err error) *ValidationError {
	verr := &ValidationError{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("form", err.Error())
		return verr
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), describeRule(fe))
	}
	return verr
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "slug":
		return "may contain only lowercase letters, numbers and hyphens"
	default:
		return "is invalid"
	}
}
