// Package validator is a catalog of string validation predicates and
// sanitizers.
//
// Every predicate takes the value to check as its first argument and any
// configuration after it:
//
//	validator.IsLength("hello", 1, 10)                 // true
//	validator.IsIn("male", []string{"male", "female"}) // true
//	validator.IsEmail("Sam <sam@example.com>", validator.EmailOptions{AllowDisplayName: true})
//
// # Export table
//
// Besides the typed Go functions the package publishes an export table keyed
// by camelCase names ("equals", "isEmail", "toInt", "trim", ...). The
// table is what schema adapters enumerate at startup:
//
//	for _, name := range validator.Exports() {
//		fn, _ := validator.Lookup(name)
//		switch f := fn.(type) {
//		case validator.Func:      // predicate: f(value, args...) bool
//		case validator.Sanitizer: // transformer: f(value, args...) any
//		}
//	}
//
// Table entries receive their extra arguments as untyped values. Numbers may
// be any Go integer or float type (BSON decoding yields int32, int64 and
// float64) or a numeric string; lists may be []string or []any. A predicate
// whose mandatory argument cannot be coerced reports false.
//
// # Format checks
//
// Several format predicates (email, base64, credit card, ISBN, MAC, semver,
// coordinates) delegate to github.com/go-playground/validator/v10 tags. All of
// them report false for the empty string.
package validator
