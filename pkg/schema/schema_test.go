package schema_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongovalidator/pkg/schema"
)

func notEmpty(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

func hasAt(v any) bool {
	s, ok := v.(string)
	return ok && strings.Contains(s, "@")
}

func TestSchemaPaths(t *testing.T) {
	s := schema.New()
	name := s.Path("name")
	s.Path("email")

	assert.Same(t, name, s.Path("name"))
	assert.Equal(t, []string{"name", "email"}, s.Paths())
	assert.Equal(t, "name", name.Name())
}

func TestSchemaValidate(t *testing.T) {
	s := schema.New()
	s.Path("name").Required().Validate(notEmpty, "name is empty")
	s.Path("email").Required().Validate(hasAt, "invalid email")

	t.Run("valid document", func(t *testing.T) {
		assert.NoError(t, s.Validate(map[string]any{"name": "Sam", "email": "sam@example.com"}))
	})

	t.Run("reports every failing path", func(t *testing.T) {
		err := s.Validate(map[string]any{"name": "Sam", "email": "nope"})
		require.Error(t, err)

		verrs := schema.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"email"}, verrs.Paths())
		assert.Equal(t, []string{"invalid email"}, verrs.Get("email"))

		e := verrs.GetErrors("email")[0]
		assert.Equal(t, schema.KindUserDefined, e.Kind)
		assert.Equal(t, "nope", e.Value)
		assert.Equal(t, "validation.user_defined", e.TranslationKey)
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := s.Validate(bson.M{})
		verrs := schema.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"name", "email"}, verrs.Paths())
		assert.Equal(t, []string{"Path `name` is required."}, verrs.Get("name"))
		assert.Equal(t, schema.KindRequired, verrs.GetErrors("name")[0].Kind)
	})

	t.Run("empty string fails required once", func(t *testing.T) {
		err := s.Validate(bson.M{"name": "", "email": "sam@example.com"})
		verrs := schema.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Len(t, verrs.GetErrors("name"), 1)
		assert.Equal(t, schema.KindRequired, verrs.GetErrors("name")[0].Kind)
	})

	t.Run("nil document", func(t *testing.T) {
		assert.ErrorIs(t, s.Validate(nil), schema.ErrInvalidDocument)
	})
}

func TestSchemaOptionalPaths(t *testing.T) {
	s := schema.New()
	s.Path("nickname").Validate(notEmpty, "")

	t.Run("missing value skips validators", func(t *testing.T) {
		assert.NoError(t, s.Validate(bson.M{}))
		assert.NoError(t, s.Validate(bson.M{"nickname": nil}))
	})

	t.Run("default message is rendered", func(t *testing.T) {
		err := s.Validate(bson.M{"nickname": ""})
		verrs := schema.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"Validator failed for path `nickname` with value ``"}, verrs.Get("nickname"))
	})
}

func TestSchemaMessageTemplate(t *testing.T) {
	s := schema.New()
	s.Path("email").Validate(hasAt, "{VALUE} is not a valid {PATH}")
	s.Path("name").Required("{PATH} must be set")

	err := s.Validate(bson.M{"email": "nope"})
	verrs := schema.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"nope is not a valid email"}, verrs.Get("email"))
	assert.Equal(t, []string{"name must be set"}, verrs.Get("name"))
}

func TestSchemaDescriptors(t *testing.T) {
	s := schema.New()
	s.Path("email").ValidateWith(
		schema.Descriptor{Validator: notEmpty, Message: "empty"},
		schema.Descriptor{Validator: hasAt},
	)

	err := s.Validate(bson.M{"email": "nope"})
	verrs := schema.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"Validator failed for path `email` with value `nope`"}, verrs.Get("email"))

	t.Run("nil validator always fails", func(t *testing.T) {
		s := schema.New()
		s.Path("x").ValidateWith(schema.Descriptor{Message: "broken"})
		err := s.Validate(bson.M{"x": "anything"})
		assert.Equal(t, []string{"broken"}, schema.ExtractValidationErrors(err).Get("x"))
	})
}

func TestSchemaDocumentForms(t *testing.T) {
	type address struct {
		City string `bson:"city"`
	}
	type user struct {
		Name    string  `bson:"name"`
		Email   string  `bson:"email,omitempty"`
		Address address `bson:"address"`
	}

	s := schema.New()
	s.Path("name").Required()
	s.Path("email").Required()
	s.Path("address.city").Required().Validate(notEmpty, "")

	t.Run("struct via bson tags", func(t *testing.T) {
		err := s.Validate(user{Name: "Sam", Address: address{City: "Oslo"}})
		verrs := schema.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"email"}, verrs.Paths())
	})

	t.Run("struct pointer", func(t *testing.T) {
		err := s.Validate(&user{Name: "Sam", Email: "sam@example.com", Address: address{City: "Oslo"}})
		assert.NoError(t, err)
	})

	t.Run("bson.D with nested bson.D", func(t *testing.T) {
		doc := bson.D{
			{Key: "name", Value: "Sam"},
			{Key: "email", Value: "sam@example.com"},
			{Key: "address", Value: bson.D{{Key: "city", Value: ""}}},
		}
		err := s.Validate(doc)
		verrs := schema.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"address.city"}, verrs.Paths())
	})

	t.Run("nested plain maps", func(t *testing.T) {
		doc := map[string]any{
			"name":    "Sam",
			"email":   "sam@example.com",
			"address": map[string]any{"city": "Oslo"},
		}
		assert.NoError(t, s.Validate(doc))
	})
}

func TestSchemaConcurrentExtendAndValidate(t *testing.T) {
	s := schema.New()
	s.Path("email").Required().Validate(hasAt, "invalid email")

	doc := bson.M{"email": "sam@example.com", "name": "Sam"}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Path("name").Required().Validate(notEmpty, "name is empty")
			s.Path("email").ValidateWith(schema.Descriptor{Validator: hasAt})
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Validate(doc))
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"email", "name"}, s.Paths())

	err := s.Validate(bson.M{"email": "nope"})
	verrs := schema.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Len(t, verrs.Get("email"), 17)
	assert.Equal(t, []string{"email", "name"}, verrs.Paths())
}
