// Package mongovalidator exposes the predicates of the validator package as
// validators for the schema package.
//
// A Registry is built once from the validator export table. Every export
// except coercion functions (names starting with "to") and a fixed blacklist
// of sanitizers and meta entries is registered under two keys:
//
//   - name: a Factory. Arguments bind the validator's configuration and the
//     returned predicate takes the field value.
//   - "$" + name: a DescriptorFactory. A trailing Options value supplies the
//     error message; every other argument is bound as above.
//
// One extra predicate, notEmpty, is always present.
//
// # Usage
//
//	reg, err := mongovalidator.New()
//	if err != nil {
//		return err
//	}
//
//	s := schema.New()
//	s.Path("name").Required().Validate(reg.Get("notEmpty")(), "name is empty")
//	s.Path("email").Required().ValidateWith(
//		reg.Descriptor("$isEmail")(validator.EmailOptions{AllowDisplayName: true}, mongovalidator.Msg("invalid email")),
//	)
//
// Only values of type Options or *Options are taken as the message argument.
// A map with a "msg" key is passed to the validator like any other argument.
//
// Extend registers custom predicates and returns ErrNameConflict for names
// already in use. Get and Descriptor return nil for unknown names.
package mongovalidator
