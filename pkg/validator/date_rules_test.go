package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mongovalidator/pkg/validator"
)

func TestIsDate(t *testing.T) {
	for _, value := range []string{
		"2015-02-27",
		"2015-02-27 10:30:00",
		"2015-02-27T10:30:00Z",
		"02/27/2015",
		"Feb 27, 2015",
	} {
		assert.True(t, validator.IsDate(value), value)
	}

	assert.False(t, validator.IsDate("not a date"))
	assert.False(t, validator.IsDate("2015-13-45"))
	assert.False(t, validator.IsDate(""))
}

func TestIsAfterBefore(t *testing.T) {
	ref := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("default reference is now", func(t *testing.T) {
		assert.True(t, validator.IsAfter("2100-01-01"))
		assert.False(t, validator.IsAfter("2000-01-01"))
		assert.True(t, validator.IsBefore("2000-01-01"))
		assert.False(t, validator.IsBefore("2100-01-01"))
	})

	t.Run("explicit reference", func(t *testing.T) {
		assert.True(t, validator.IsAfter("2015-01-02", ref))
		assert.False(t, validator.IsAfter("2014-12-31", ref))
		assert.True(t, validator.IsBefore("2014-12-31", ref))
	})

	t.Run("invalid dates", func(t *testing.T) {
		assert.False(t, validator.IsAfter("nope", ref))
		assert.False(t, validator.IsBefore("nope", ref))
	})
}
