package validator

import (
	"math"
	"regexp"
	"strconv"
)

var (
	intRegex   = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	floatRegex = regexp.MustCompile(`^[-+]?(?:[0-9]+)?(?:\.[0-9]*)?(?:[eE][-+]?[0-9]+)?$`)
)

// IntOptions bounds IsInt. Nil bounds are open.
type IntOptions struct {
	Min *int64
	Max *int64
}

// FloatOptions bounds IsFloat. Nil bounds are open.
type FloatOptions struct {
	Min *float64
	Max *float64
}

// IsInt reports whether str is a base-10 integer without leading zeros,
// optionally within the bounds of opts.
func IsInt(str string, opts ...IntOptions) bool {
	if !intRegex.MatchString(str) {
		return false
	}
	n, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return false
	}
	if len(opts) > 0 {
		if opts[0].Min != nil && n < *opts[0].Min {
			return false
		}
		if opts[0].Max != nil && n > *opts[0].Max {
			return false
		}
	}
	return true
}

// IsFloat reports whether str is a decimal number, optionally within the
// bounds of opts.
func IsFloat(str string, opts ...FloatOptions) bool {
	if str == "" || str == "." || str == "+" || str == "-" {
		return false
	}
	if !floatRegex.MatchString(str) {
		return false
	}
	f := ToFloat(str)
	if math.IsNaN(f) {
		return false
	}
	if len(opts) > 0 {
		if opts[0].Min != nil && f < *opts[0].Min {
			return false
		}
		if opts[0].Max != nil && f > *opts[0].Max {
			return false
		}
	}
	return true
}

// IsDivisibleBy reports whether the number in str is divisible by num.
func IsDivisibleBy(str string, num int) bool {
	if num == 0 {
		return false
	}
	f := ToFloat(str)
	if math.IsNaN(f) {
		return false
	}
	return math.Mod(f, float64(num)) == 0
}
