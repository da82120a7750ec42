package validator

import (
	"math"
	"strconv"
	"strings"
)

func argAt(args []any, i int) (any, bool) {
	if i < 0 || i >= len(args) || args[i] == nil {
		return nil, false
	}
	return args[i], true
}

func stringArg(args []any, i int) (string, bool) {
	v, ok := argAt(args, i)
	if !ok {
		return "", false
	}
	return ToString(v), true
}

func intArg(args []any, i int) (int, bool) {
	v, ok := argAt(args, i)
	if !ok {
		return 0, false
	}
	return toInt(v)
}

// optionalIntArg reads an optional int argument. given is false when args[i]
// is absent; ok is false when it is present but not a representable int.
func optionalIntArg(args []any, i int) (n int, given, ok bool) {
	if _, present := argAt(args, i); !present {
		return 0, false, true
	}
	n, ok = intArg(args, i)
	return n, true, ok
}

func boolArg(args []any, i int) bool {
	v, ok := argAt(args, i)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return ToBoolean(b, true)
	}
	return false
}

// optionsArg returns args[i] when it is a T or a non-nil *T.
func optionsArg[T any](args []any, i int) (T, bool) {
	var zero T
	v, ok := argAt(args, i)
	if !ok {
		return zero, false
	}
	switch o := v.(type) {
	case T:
		return o, true
	case *T:
		if o != nil {
			return *o, true
		}
	}
	return zero, false
}

// stringsArg collects a string list starting at args[from]. A single slice
// argument is flattened; otherwise every remaining argument is one item.
func stringsArg(args []any, from int) ([]string, bool) {
	v, ok := argAt(args, from)
	if !ok {
		return nil, false
	}
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, ToString(item))
		}
		return out, true
	}
	out := make([]string, 0, len(args)-from)
	for _, item := range args[from:] {
		out = append(out, ToString(item))
	}
	return out, true
}

// toInt converts v to an int. Values that do not fit, NaN and ±Inf are
// rejected rather than wrapped.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	// float64(math.MaxInt) rounds up to 2^63, which does not fit.
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f := ToFloat(n)
		return f, !math.IsNaN(f)
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}
