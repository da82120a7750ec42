package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/mongovalidator/pkg/schema"
)

// Collection validates documents against a schema before writing them.
type Collection struct {
	coll   *mongo.Collection
	schema *schema.Schema
}

// NewCollection wraps coll. A nil schema disables validation.
func NewCollection(coll *mongo.Collection, s *schema.Schema) *Collection {
	return &Collection{coll: coll, schema: s}
}

// Collection returns the underlying driver collection.
func (c *Collection) Collection() *mongo.Collection {
	return c.coll
}

// Validate runs the schema check performed before every write. Failures are
// joined with ErrValidationFailed; schema.ExtractValidationErrors returns the
// details.
func (c *Collection) Validate(doc any) error {
	if c.schema == nil {
		return nil
	}
	if err := c.schema.Validate(doc); err != nil {
		return errors.Join(ErrValidationFailed, err)
	}
	return nil
}

func (c *Collection) InsertOne(ctx context.Context, doc any) (*mongo.InsertOneResult, error) {
	if err := c.Validate(doc); err != nil {
		return nil, err
	}
	return c.coll.InsertOne(ctx, doc)
}

// InsertMany validates every document first and writes none if any fails.
func (c *Collection) InsertMany(ctx context.Context, docs []any) (*mongo.InsertManyResult, error) {
	var errs []error
	for _, doc := range docs {
		if err := c.Validate(doc); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c.coll.InsertMany(ctx, docs)
}

func (c *Collection) ReplaceOne(ctx context.Context, filter, doc any, upsert bool) (*mongo.UpdateResult, error) {
	if err := c.Validate(doc); err != nil {
		return nil, err
	}
	return c.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(upsert))
}
