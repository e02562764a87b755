package utilities

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// IsValidationError reports whether err came from binding tag validation rather than
// from decoding a malformed body.
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}
