package validation

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared; a validator.Validate caches struct metadata and is
// safe for concurrent use.
var validate = validator.New()

// Struct validates a request payload against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}
