package mongovalidator_test

import (
	"fmt"

	"github.com/dmitrymomot/mongovalidator"
	"github.com/dmitrymomot/mongovalidator/pkg/schema"
)

func Example() {
	reg := mongovalidator.MustNew()

	s := schema.New()
	s.Path("name").Required().Validate(reg.Get("notEmpty")(), "Please provide a name")
	s.Path("email").Required().ValidateWith(reg.Descriptor("$isEmail")(mongovalidator.Msg("Email is wrong")))

	err := s.Validate(map[string]any{"name": "Sam", "email": "sam.verschueren"})
	for _, e := range schema.ExtractValidationErrors(err) {
		fmt.Printf("%s: %s\n", e.Path, e.Message)
	}
	// Output:
	// email: Email is wrong
}
