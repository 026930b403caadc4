// Package service contains the business rules: input validation, uniqueness
// scans, the admin existence check, and orchestration of the repositories.
// Services accept typed input structs and return domain errors from
// internal/apperror; they know nothing about HTTP.
package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/volunteerhub/internal/apperror"
)

// emailPattern is the format contract for email fields: no whitespace, one
// @, and a dot in the domain part. Deliberately looser than RFC 5322 — it is
// part of the external API contract, so validator's built-in `email` rule
// (which accepts a different set of strings) is not used.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("emailformat", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("registering emailformat rule: %v", err))
	}

	// Report fields by their json tag so validation messages match the wire
	// names the caller actually sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateInput runs struct validation on an input value and converts the
// first failure into a domain validation error. Validation always runs
// before any repository mutation — a rejected request writes nothing.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperror.ValidationFailed(fe.Field(), fieldMessage(fe))
	}
	return apperror.ValidationFailed("", "invalid request body")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "emailformat":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
