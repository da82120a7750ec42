package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericRegex      = regexp.MustCompile(`^[-+]?[0-9]+$`)
	asciiRegex        = regexp.MustCompile(`^[\x00-\x7F]+$`)
)

// Equals reports whether str matches comparison exactly.
func Equals(str, comparison string) bool {
	return str == comparison
}

// Contains reports whether str contains elem.
func Contains(str, elem string) bool {
	return strings.Contains(str, elem)
}

// Matches reports whether str matches pattern. Modifiers follow the
// JavaScript flag letters: i, m and s are honoured, g is ignored.
// An invalid pattern never matches.
func Matches(str, pattern string, modifiers ...string) bool {
	flags := ""
	for _, m := range modifiers {
		for _, r := range m {
			switch r {
			case 'i', 'm', 's':
				if !strings.ContainsRune(flags, r) {
					flags += string(r)
				}
			}
		}
	}
	if flags != "" {
		pattern = "(?" + flags + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(str)
}

// IsLength reports whether the number of characters in str is within
// [min, max]. Without max there is no upper bound.
func IsLength(str string, min int, max ...int) bool {
	n := utf8.RuneCountInString(str)
	if n < min {
		return false
	}
	return len(max) == 0 || n <= max[0]
}

// IsByteLength is IsLength measured in bytes.
func IsByteLength(str string, min int, max ...int) bool {
	n := len(str)
	if n < min {
		return false
	}
	return len(max) == 0 || n <= max[0]
}

// IsNull reports whether str is empty.
func IsNull(str string) bool {
	return len(str) == 0
}

// IsIn reports whether str is a member of options. A slice or array checks
// membership by string form, a map checks its keys and a string checks for
// a substring.
func IsIn(str string, options any) bool {
	switch opts := options.(type) {
	case nil:
		return false
	case string:
		return strings.Contains(opts, str)
	case []string:
		for _, o := range opts {
			if o == str {
				return true
			}
		}
		return false
	case []any:
		for _, o := range opts {
			if ToString(o) == str {
				return true
			}
		}
		return false
	}

	rv := reflect.ValueOf(options)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if ToString(rv.Index(i).Interface()) == str {
				return true
			}
		}
	case reflect.Map:
		for _, k := range rv.MapKeys() {
			if fmt.Sprint(k.Interface()) == str {
				return true
			}
		}
	}
	return false
}

// IsAlpha reports whether str contains only ASCII letters.
func IsAlpha(str string) bool {
	return alphaRegex.MatchString(str)
}

// IsAlphanumeric reports whether str contains only ASCII letters and digits.
func IsAlphanumeric(str string) bool {
	return alphanumericRegex.MatchString(str)
}

// IsNumeric reports whether str is an optionally signed run of digits.
func IsNumeric(str string) bool {
	return numericRegex.MatchString(str)
}

func IsLowercase(str string) bool {
	return str == strings.ToLower(str)
}

func IsUppercase(str string) bool {
	return str == strings.ToUpper(str)
}

// IsAscii reports whether str is non-empty and ASCII only.
func IsAscii(str string) bool {
	return asciiRegex.MatchString(str)
}

// IsMultibyte reports whether str contains at least one multibyte character.
func IsMultibyte(str string) bool {
	if str == "" {
		return false
	}
	return playground(str, "multibyte")
}

// IsFullWidth reports whether str contains any East Asian wide or
// fullwidth character.
func IsFullWidth(str string) bool {
	for _, r := range str {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			return true
		}
	}
	return false
}

// IsHalfWidth reports whether str contains any narrow or halfwidth character.
func IsHalfWidth(str string) bool {
	for _, r := range str {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianNarrow, width.EastAsianHalfwidth:
			return true
		}
	}
	return false
}

// IsVariableWidth reports whether str mixes full and half width characters.
func IsVariableWidth(str string) bool {
	return IsFullWidth(str) && IsHalfWidth(str)
}

// IsSurrogatePair reports whether str contains a character outside the
// Basic Multilingual Plane, i.e. one that needs a UTF-16 surrogate pair.
func IsSurrogatePair(str string) bool {
	for _, r := range str {
		if r > 0xFFFF {
			return true
		}
	}
	return false
}
