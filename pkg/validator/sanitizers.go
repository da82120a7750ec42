package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var escapeReplacer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	"`", "&#96;",
)

// ToString converts any value to the string every predicate operates on.
// nil becomes the empty string.
func ToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	case []byte:
		return string(s)
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case time.Time:
		return s.Format(time.RFC3339Nano)
	case bson.ObjectID:
		return s.Hex()
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	}
	return fmt.Sprint(v)
}

// ToDate parses str with the supported date layouts.
func ToDate(str string) (time.Time, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToFloat parses str as a float, returning NaN when it is not a number.
func ToFloat(str string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ToInt parses the leading integer of str in the given radix (default 10),
// ignoring any trailing garbage: "42px" is 42.
func ToInt(str string, radix ...int) (int64, bool) {
	base := 10
	if len(radix) > 0 && radix[0] >= 2 && radix[0] <= 36 {
		base = radix[0]
	}

	s := strings.TrimSpace(str)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	if base == 16 {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	}

	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(sign+s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// ToBoolean converts str to a bool. In strict mode only "1" and "true" are
// true; otherwise everything except "0", "false" and "" is true.
func ToBoolean(str string, strict ...bool) bool {
	if len(strict) > 0 && strict[0] {
		return str == "1" || str == "true"
	}
	return str != "0" && str != "false" && str != ""
}

// Trim removes chars (default: whitespace) from both ends of str.
func Trim(str string, chars ...string) string {
	if len(chars) > 0 && chars[0] != "" {
		return strings.Trim(str, chars[0])
	}
	return strings.TrimSpace(str)
}

// LTrim removes chars (default: whitespace) from the start of str.
func LTrim(str string, chars ...string) string {
	if len(chars) > 0 && chars[0] != "" {
		return strings.TrimLeft(str, chars[0])
	}
	return strings.TrimLeftFunc(str, unicode.IsSpace)
}

// RTrim removes chars (default: whitespace) from the end of str.
func RTrim(str string, chars ...string) string {
	if len(chars) > 0 && chars[0] != "" {
		return strings.TrimRight(str, chars[0])
	}
	return strings.TrimRightFunc(str, unicode.IsSpace)
}

// Escape replaces HTML special characters with entities.
func Escape(str string) string {
	return escapeReplacer.Replace(str)
}

// StripLow removes ASCII control characters. Newlines and carriage returns
// survive when keepNewLines is set.
func StripLow(str string, keepNewLines ...bool) string {
	keep := len(keepNewLines) > 0 && keepNewLines[0]
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			if keep && (r == '\n' || r == '\r') {
				return r
			}
			return -1
		}
		return r
	}, str)
}

// Whitelist keeps only the characters of str that appear in chars.
func Whitelist(str, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return r
		}
		return -1
	}, str)
}

// Blacklist removes the characters of str that appear in chars.
func Blacklist(str, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, str)
}

// NormalizeEmailOptions tunes NormalizeEmail.
type NormalizeEmailOptions struct {
	// KeepCase preserves the case of the local part.
	KeepCase bool
}

// NormalizeEmail canonicalizes an email address: the domain is lowercased,
// the local part too unless KeepCase is set, and Gmail addresses drop dots
// and +tags. It reports false for strings that are not email addresses.
func NormalizeEmail(str string, opts ...NormalizeEmailOptions) (string, bool) {
	if !IsEmail(str) {
		return "", false
	}
	var o NormalizeEmailOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	at := strings.LastIndex(str, "@")
	local, domain := str[:at], strings.ToLower(str[at+1:])
	if !o.KeepCase {
		local = strings.ToLower(local)
	}

	if domain == "gmail.com" || domain == "googlemail.com" {
		if plus := strings.Index(local, "+"); plus >= 0 {
			local = local[:plus]
		}
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"
	}
	return local + "@" + domain, true
}
