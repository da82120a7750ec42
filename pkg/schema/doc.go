// Package schema implements a small document schema layer: named paths with a
// required flag and ordered validators, checked against a document before it
// is written to MongoDB.
//
// Validators are attached in one of two conventions. The first passes a
// predicate and a message:
//
//	s := schema.New()
//	s.Path("email").Required().Validate(isEmail, "invalid email")
//
// The second passes descriptors, values carrying their own message:
//
//	s.Path("email").ValidateWith(schema.Descriptor{Validator: isEmail, Message: "invalid email"})
//
// An empty message falls back to DefaultInvalidMessage. Messages may contain
// the {PATH} and {VALUE} placeholders.
//
// Schema.Validate accepts maps, bson.D or any struct the BSON codec can
// marshal, so bson struct tags decide path names. Dotted path names address
// nested documents. A missing or nil value fails a required path and skips
// every other validator of that path. All failures are returned together as
// ValidationErrors:
//
//	if err := s.Validate(doc); err != nil {
//		if verrs := schema.ExtractValidationErrors(err); verrs != nil {
//			for _, path := range verrs.Paths() {
//				fmt.Println(path, verrs.Get(path))
//			}
//		}
//	}
//
// A Schema is safe for concurrent use. Paths may gain validators while other
// goroutines call Validate; each run uses the checks a path held when the run
// reached it.
package schema
