package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the shared validator against a request struct's validate tags.
func Struct(v any) error {
	return validate.Struct(v)
}
