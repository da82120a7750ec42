package validator

import (
	impl "github.com/go-playground/validator/v10"
)

// tags is shared by every format check; *impl.Validate is safe for
// concurrent use once configured.
var tags = impl.New(impl.WithRequiredStructEnabled())

// playground runs a single go-playground tag against value.
func playground(value, tag string) bool {
	if value == "" {
		return false
	}
	return tags.Var(value, tag) == nil
}
