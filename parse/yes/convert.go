package yes

import (
	"encoding"
	"fmt"
	"strconv"
	"time"

	"fortio.org/safecast"
)

// GetOr returns the value of the first argument named key coerced into T.
// Absence and conversion failure both fall back to or: required-field and
// range validation are the caller's schema, not the parser's.
func GetOr[T any](e *Element, key string, or T) T {
	kv, ok := e.lookup(key)
	if !ok {
		return or
	}
	v, err := fromText[T](kv.Val)
	if err != nil {
		return or
	}
	return v
}

// ArgOr is the positional variant of GetOr: it coerces the argument at
// position idx, with the same fallback contract.
func ArgOr[T any](e *Element, idx int, or T) T {
	kv, ok := e.Arg(idx)
	if !ok {
		return or
	}
	v, err := fromText[T](kv.Val)
	if err != nil {
		return or
	}
	return v
}

// fromText converts a stored textual value into T. Types implementing
// encoding.TextUnmarshaler parse themselves; built-in scalars go through
// strconv, with narrowing integer targets checked by safecast.
func fromText[T any](s string) (T, error) {
	var out T

	if u, ok := any(&out).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(s)); err != nil {
			return out, err
		}
		return out, nil
	}

	switch p := any(&out).(type) {
	case *string:
		*p = s
	case *bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return out, err
		}
		*p = b
	case *int:
		return narrowInt[T, int](s)
	case *int8:
		return narrowInt[T, int8](s)
	case *int16:
		return narrowInt[T, int16](s)
	case *int32:
		return narrowInt[T, int32](s)
	case *int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return out, err
		}
		*p = i
	case *uint:
		return narrowUint[T, uint](s)
	case *uint8:
		return narrowUint[T, uint8](s)
	case *uint16:
		return narrowUint[T, uint16](s)
	case *uint32:
		return narrowUint[T, uint32](s)
	case *uint64:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return out, err
		}
		*p = u
	case *float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return out, err
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out, err
		}
		*p = f
	case *time.Duration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return out, err
		}
		*p = d
	default:
		return out, fmt.Errorf("unsupported value type %T", out)
	}

	return out, nil
}

// narrowing targets smaller than 64 bits
type narrowed interface {
	~int | ~int8 | ~int16 | ~int32 | ~uint | ~uint8 | ~uint16 | ~uint32
}

// narrowInt parses a base-10 integer and narrows it to N, failing on
// overflow instead of wrapping.
func narrowInt[T any, N narrowed](s string) (T, error) {
	var out T
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return out, err
	}
	n, err := safecast.Conv[N](i)
	if err != nil {
		return out, err
	}
	return any(n).(T), nil
}

func narrowUint[T any, N narrowed](s string) (T, error) {
	var out T
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return out, err
	}
	n, err := safecast.Conv[N](u)
	if err != nil {
		return out, err
	}
	return any(n).(T), nil
}
