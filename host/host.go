// Package host defines the contract between the adapter and the scripting
// host it serves. The host hands the adapter loosely typed values and
// callables; this package holds the coercion rules that turn those values
// into the exact shapes the engine boundary needs.
package host

import (
	"fmt"
	"math"
)

// Callable is a function the host registered for a callback slot. The
// adapter invokes it synchronously from inside an engine callback; a
// returned error is routed according to whether a scheduler currently owns
// the handle.
type Callable func(args ...any) (any, error)

// IsNil reports whether the host passed an absent value. Hosts express
// "unset" as an untyped nil or as a typed-nil Callable.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	if c, ok := v.(Callable); ok {
		return c == nil
	}
	return false
}

// ToInt32 converts a host value to a 32-bit integer, the width callback
// return values and enum options travel at. Floats must be integral and in
// range.
func ToInt32(v any) (int32, error) {
	switch n := v.(type) {
	case int32:
		return n, nil
	case int:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("value %d overflows int32", n)
		}
		return int32(n), nil
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("value %d overflows int32", n)
		}
		return int32(n), nil
	case uint32:
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("value %d overflows int32", n)
		}
		return int32(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("value %v is not a 32-bit integer", n)
		}
		return int32(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to int32", v)
	}
}

// ToInt64 converts a host value to a wide integer for off_t-range options.
func ToInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, fmt.Errorf("value %v is not a 64-bit integer", n)
		}
		return int64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to int64", v)
	}
}

// ToFloat64 converts a host value to a float64.
func ToFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to float64", v)
	}
}

// ToString converts a host value to a string. Only real strings qualify;
// numbers are not stringified implicitly.
func ToString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("cannot coerce %T to string", v)
}

// ToStrings converts an ordered host sequence to a string slice. Every
// element must itself be a string.
func ToStrings(v any) ([]string, error) {
	switch seq := v.(type) {
	case []string:
		return seq, nil
	case []any:
		out := make([]string, len(seq))
		for i, el := range seq {
			s, ok := el.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: cannot coerce %T to string", i, el)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot coerce %T to a string sequence", v)
	}
}
