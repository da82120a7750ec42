package validator_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongovalidator/pkg/validator"
)

func TestToString(t *testing.T) {
	id := bson.NewObjectID()
	s := "ptr"

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"string pointer", &s, "ptr"},
		{"nil string pointer", (*string)(nil), ""},
		{"bytes", []byte("abc"), "abc"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"int32", int32(-7), "-7"},
		{"int64", int64(1) << 40, "1099511627776"},
		{"float", 1.5, "1.5"},
		{"time", time.Date(2015, 2, 27, 0, 0, 0, 0, time.UTC), "2015-02-27T00:00:00Z"},
		{"object id", id, id.Hex()},
		{"error", errors.New("boom"), "boom"},
		{"fallback", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.ToString(tt.value))
		})
	}
}

func TestToDate(t *testing.T) {
	d, ok := validator.ToDate("2015-02-27")
	require.True(t, ok)
	assert.Equal(t, time.Date(2015, 2, 27, 0, 0, 0, 0, time.UTC), d)

	_, ok = validator.ToDate("garbage")
	assert.False(t, ok)
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.5, validator.ToFloat(" 1.5 "))
	assert.True(t, math.IsNaN(validator.ToFloat("abc")))
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		radix  []int
		want   int64
		wantOK bool
	}{
		{"plain", "42", nil, 42, true},
		{"negative", "-42", nil, -42, true},
		{"trailing garbage", "42px", nil, 42, true},
		{"hex", "ff", []int{16}, 255, true},
		{"hex prefix", "0xff", []int{16}, 255, true},
		{"binary", "101", []int{2}, 5, true},
		{"not a number", "abc", nil, 0, false},
		{"empty", "", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := validator.ToInt(tt.value, tt.radix...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBoolean(t *testing.T) {
	assert.True(t, validator.ToBoolean("yes"))
	assert.False(t, validator.ToBoolean("0"))
	assert.False(t, validator.ToBoolean("false"))
	assert.False(t, validator.ToBoolean(""))

	assert.True(t, validator.ToBoolean("true", true))
	assert.True(t, validator.ToBoolean("1", true))
	assert.False(t, validator.ToBoolean("yes", true))
}

func TestTrimFamily(t *testing.T) {
	assert.Equal(t, "a b", validator.Trim("  a b \n"))
	assert.Equal(t, "a", validator.Trim("xxaxx", "x"))
	assert.Equal(t, "a  ", validator.LTrim("  a  "))
	assert.Equal(t, "axx", validator.LTrim("xxaxx", "x"))
	assert.Equal(t, "  a", validator.RTrim("  a  "))
	assert.Equal(t, "xxa", validator.RTrim("xxaxx", "x"))
}

func TestEscape(t *testing.T) {
	assert.Equal(t,
		"&lt;a href=&#x27;x&#x27;&gt;&amp;&lt;&#x2F;a&gt;",
		validator.Escape("<a href='x'>&</a>"),
	)
}

func TestStripLow(t *testing.T) {
	assert.Equal(t, "abc", validator.StripLow("a\x00b\nc"))
	assert.Equal(t, "ab\nc\r", validator.StripLow("a\x07b\nc\r\x7f", true))
}

func TestWhitelistBlacklist(t *testing.T) {
	assert.Equal(t, "abc", validator.Whitelist("a1b2c3", "abc"))
	assert.Equal(t, "123", validator.Blacklist("a1b2c3", "abc"))
}

func TestNormalizeEmail(t *testing.T) {
	t.Run("gmail dots and tags", func(t *testing.T) {
		got, ok := validator.NormalizeEmail("Some.One+tag@GoogleMail.com")
		require.True(t, ok)
		assert.Equal(t, "someone@gmail.com", got)
	})

	t.Run("lowercases by default", func(t *testing.T) {
		got, ok := validator.NormalizeEmail("Foo.Bar@Example.com")
		require.True(t, ok)
		assert.Equal(t, "foo.bar@example.com", got)
	})

	t.Run("keeps case when asked", func(t *testing.T) {
		got, ok := validator.NormalizeEmail("Foo@Example.com", validator.NormalizeEmailOptions{KeepCase: true})
		require.True(t, ok)
		assert.Equal(t, "Foo@example.com", got)
	})

	t.Run("rejects non emails", func(t *testing.T) {
		_, ok := validator.NormalizeEmail("nope")
		assert.False(t, ok)
	})
}
