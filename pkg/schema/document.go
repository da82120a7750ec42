package schema

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// toDocument normalizes doc into a field map. Maps are used as is; anything
// else goes through the BSON codec so struct tags apply exactly as they do
// when the document is written to MongoDB.
func toDocument(doc any) (bson.M, error) {
	switch d := doc.(type) {
	case nil:
		return nil, ErrInvalidDocument
	case bson.M:
		return d, nil
	case map[string]any:
		return bson.M(d), nil
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return m, nil
}

// lookup resolves a dotted path through nested documents.
func lookup(doc bson.M, path string) (any, bool) {
	var current any = doc
	for key := range strings.SplitSeq(path, ".") {
		next, ok := field(current, key)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func field(container any, key string) (any, bool) {
	switch c := container.(type) {
	case bson.M:
		v, ok := c[key]
		return v, ok
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case bson.D:
		for _, e := range c {
			if e.Key == key {
				return e.Value, true
			}
		}
	}
	return nil, false
}
