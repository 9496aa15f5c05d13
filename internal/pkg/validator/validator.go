// Package validator wraps go-playground/validator with a shared instance,
// relayer-specific tags and uniform error formatting.
//
// Custom tags:
//   - privkey: a 32-byte secp256k1 private key in hex, with or without 0x.
//
// Field names in error messages use the `yaml` tag when present so errors
// point at the key the operator actually wrote.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var privateKeyPattern = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{64}$`)

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(yamlFieldName)

	if err := validator.RegisterValidation("privkey", isPrivateKey); err != nil {
		panic(err)
	}
}

func yamlFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func isPrivateKey(fl gvalidator.FieldLevel) bool {
	return privateKeyPattern.MatchString(fl.Field().String())
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per failing field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			redact(validationErr),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// redact hides values checked by privkey so key material never reaches logs.
func redact(fe gvalidator.FieldError) any {
	if fe.Tag() == "privkey" {
		return "<redacted>"
	}
	return fe.Value()
}

// Validate checks v against its `validate` tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
