package validator

import (
	"regexp"
	"slices"
)

// Version of the function catalog. Exported in the table as "version".
const Version = "1.0.0"

// Func is the table form of a predicate: the value first, configuration after.
type Func func(value string, args ...any) bool

// Sanitizer is the table form of a transformer.
type Sanitizer func(value string, args ...any) any

var exports = map[string]any{
	"version": Version,

	// Predicates
	"equals": Func(func(v string, args ...any) bool {
		cmp, ok := stringArg(args, 0)
		return ok && Equals(v, cmp)
	}),
	"contains": Func(func(v string, args ...any) bool {
		elem, ok := stringArg(args, 0)
		return ok && Contains(v, elem)
	}),
	"matches": Func(func(v string, args ...any) bool {
		p, ok := argAt(args, 0)
		if !ok {
			return false
		}
		if re, ok := p.(*regexp.Regexp); ok {
			return re.MatchString(v)
		}
		modifiers, _ := stringArg(args, 1)
		return Matches(v, ToString(p), modifiers)
	}),
	"isEmail": Func(func(v string, args ...any) bool {
		opts, _ := optionsArg[EmailOptions](args, 0)
		return IsEmail(v, opts)
	}),
	"isURL": Func(func(v string, args ...any) bool {
		opts, _ := optionsArg[URLOptions](args, 0)
		return IsURL(v, opts)
	}),
	"isFQDN": Func(func(v string, args ...any) bool {
		opts, _ := optionsArg[FQDNOptions](args, 0)
		return IsFQDN(v, opts)
	}),
	"isIP": Func(func(v string, args ...any) bool {
		version, _, ok := optionalIntArg(args, 0)
		return ok && IsIP(v, version)
	}),
	"isAlpha":         predicate(IsAlpha),
	"isNumeric":       predicate(IsNumeric),
	"isAlphanumeric":  predicate(IsAlphanumeric),
	"isBase64":        predicate(IsBase64),
	"isHexadecimal":   predicate(IsHexadecimal),
	"isHexColor":      predicate(IsHexColor),
	"isLowercase":     predicate(IsLowercase),
	"isUppercase":     predicate(IsUppercase),
	"isNull":          predicate(IsNull),
	"isJSON":          predicate(IsJSON),
	"isMultibyte":     predicate(IsMultibyte),
	"isAscii":         predicate(IsAscii),
	"isFullWidth":     predicate(IsFullWidth),
	"isHalfWidth":     predicate(IsHalfWidth),
	"isVariableWidth": predicate(IsVariableWidth),
	"isSurrogatePair": predicate(IsSurrogatePair),
	"isMongoId":       predicate(IsMongoId),
	"isCreditCard":    predicate(IsCreditCard),
	"isISIN":          predicate(IsISIN),
	"isSemVer":        predicate(IsSemVer),
	"isMACAddress":    predicate(IsMACAddress),
	"isLatLong":       predicate(IsLatLong),
	"isDate":          predicate(IsDate),
	"isInt": Func(func(v string, args ...any) bool {
		opts, _ := optionsArg[IntOptions](args, 0)
		return IsInt(v, opts)
	}),
	"isFloat": Func(func(v string, args ...any) bool {
		opts, _ := optionsArg[FloatOptions](args, 0)
		return IsFloat(v, opts)
	}),
	"isDivisibleBy": Func(func(v string, args ...any) bool {
		num, ok := intArg(args, 0)
		return ok && IsDivisibleBy(v, num)
	}),
	"isLength": Func(func(v string, args ...any) bool {
		min, _, ok := optionalIntArg(args, 0)
		if !ok {
			return false
		}
		max, given, ok := optionalIntArg(args, 1)
		if !ok {
			return false
		}
		if given {
			return IsLength(v, min, max)
		}
		return IsLength(v, min)
	}),
	"isByteLength": Func(func(v string, args ...any) bool {
		min, _, ok := optionalIntArg(args, 0)
		if !ok {
			return false
		}
		max, given, ok := optionalIntArg(args, 1)
		if !ok {
			return false
		}
		if given {
			return IsByteLength(v, min, max)
		}
		return IsByteLength(v, min)
	}),
	"isUUID": Func(func(v string, args ...any) bool {
		s, ok := stringArg(args, 0)
		if !ok || s == "all" {
			return IsUUID(v)
		}
		version, ok := toInt(s)
		return ok && IsUUID(v, version)
	}),
	"isISBN": Func(func(v string, args ...any) bool {
		version, _, ok := optionalIntArg(args, 0)
		return ok && IsISBN(v, version)
	}),
	"isAfter": Func(func(v string, args ...any) bool {
		if _, given := argAt(args, 0); !given {
			return IsAfter(v)
		}
		ref, ok := dateArg(args, 0)
		return ok && IsAfter(v, ref)
	}),
	"isBefore": Func(func(v string, args ...any) bool {
		if _, given := argAt(args, 0); !given {
			return IsBefore(v)
		}
		ref, ok := dateArg(args, 0)
		return ok && IsBefore(v, ref)
	}),
	"isIn": Func(func(v string, args ...any) bool {
		opts, ok := argAt(args, 0)
		if !ok {
			return false
		}
		if len(args) > 1 {
			list, _ := stringsArg(args, 0)
			return IsIn(v, list)
		}
		return IsIn(v, opts)
	}),
	"isMobilePhone": Func(func(v string, args ...any) bool {
		locale, _ := stringArg(args, 0)
		return IsMobilePhone(v, locale)
	}),

	// Sanitizers
	"toString": Sanitizer(func(v string, _ ...any) any { return v }),
	"toDate": Sanitizer(func(v string, _ ...any) any {
		if t, ok := ToDate(v); ok {
			return t
		}
		return nil
	}),
	"toFloat": Sanitizer(func(v string, _ ...any) any { return ToFloat(v) }),
	"toInt": Sanitizer(func(v string, args ...any) any {
		radix, _ := intArg(args, 0)
		if n, ok := ToInt(v, radix); ok {
			return n
		}
		return nil
	}),
	"toBoolean": Sanitizer(func(v string, args ...any) any {
		return ToBoolean(v, boolArg(args, 0))
	}),
	"trim": Sanitizer(func(v string, args ...any) any {
		chars, _ := stringArg(args, 0)
		return Trim(v, chars)
	}),
	"ltrim": Sanitizer(func(v string, args ...any) any {
		chars, _ := stringArg(args, 0)
		return LTrim(v, chars)
	}),
	"rtrim": Sanitizer(func(v string, args ...any) any {
		chars, _ := stringArg(args, 0)
		return RTrim(v, chars)
	}),
	"escape": Sanitizer(func(v string, _ ...any) any { return Escape(v) }),
	"stripLow": Sanitizer(func(v string, args ...any) any {
		return StripLow(v, boolArg(args, 0))
	}),
	"whitelist": Sanitizer(func(v string, args ...any) any {
		chars, _ := stringArg(args, 0)
		return Whitelist(v, chars)
	}),
	"blacklist": Sanitizer(func(v string, args ...any) any {
		chars, _ := stringArg(args, 0)
		return Blacklist(v, chars)
	}),
	"normalizeEmail": Sanitizer(func(v string, args ...any) any {
		opts, _ := optionsArg[NormalizeEmailOptions](args, 0)
		if email, ok := NormalizeEmail(v, opts); ok {
			return email
		}
		return nil
	}),
}

func predicate(fn func(string) bool) Func {
	return func(v string, _ ...any) bool { return fn(v) }
}

// Exports returns every name in the export table, sorted.
func Exports() []string {
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the table entry for name: a Func, a Sanitizer or, for
// "version", a string.
func Lookup(name string) (any, bool) {
	v, ok := exports[name]
	return v, ok
}

// Catalog exposes the export table through the Exports/Lookup pair that
// schema adapters accept as their library.
type Catalog struct{}

func (Catalog) Exports() []string              { return Exports() }
func (Catalog) Lookup(name string) (any, bool) { return Lookup(name) }
