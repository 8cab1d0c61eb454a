// Package convert performs generic conversion of raw database cell
// values into requested Go types. It has no knowledge of rows or
// drivers: callers hand it one value and one target type at a time.
package convert

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// ErrConversion indicates a value that cannot be represented in the
// requested target type. Conversion never silently truncates: a value
// outside the target's range fails rather than wrapping.
var ErrConversion = errors.New("conversion error")

var timeType = reflect.TypeOf(time.Time{})

// Value converts a raw cell value to the target type.
//
// A nil value (SQL NULL) converts to the target's zero value. A value
// whose type already matches the target passes through unchanged.
// Numeric and textual values are coerced by the target kind's standard
// parsing and widening rules, which also covers named (enum-like)
// types through their underlying kind. Pointer targets convert the
// element type and take its address.
func Value(raw any, target reflect.Type) (reflect.Value, error) {
	if raw == nil {
		return reflect.Zero(target), nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Type() == target {
		return rv, nil
	}
	if target.Kind() == reflect.Interface && rv.Type().Implements(target) {
		return rv, nil
	}
	if target.Kind() == reflect.Ptr {
		elem, err := Value(raw, target.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(target.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	out := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.Bool:
		b, err := toBool(rv)
		if err != nil {
			return reflect.Value{}, fail(raw, target, err)
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := toInt64(rv)
		if err != nil {
			return reflect.Value{}, fail(raw, target, err)
		}
		if out.OverflowInt(i) {
			return reflect.Value{}, fail(raw, target, fmt.Errorf("value %d overflows", i))
		}
		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := toUint64(rv)
		if err != nil {
			return reflect.Value{}, fail(raw, target, err)
		}
		if out.OverflowUint(u) {
			return reflect.Value{}, fail(raw, target, fmt.Errorf("value %d overflows", u))
		}
		out.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := toFloat64(rv)
		if err != nil {
			return reflect.Value{}, fail(raw, target, err)
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, fail(raw, target, fmt.Errorf("value %v overflows", f))
		}
		out.SetFloat(f)
	case reflect.String:
		s, err := toString(rv)
		if err != nil {
			return reflect.Value{}, fail(raw, target, err)
		}
		out.SetString(s)
	case reflect.Slice:
		if target.Elem().Kind() != reflect.Uint8 {
			return reflect.Value{}, fail(raw, target, nil)
		}
		b, err := toBytes(rv)
		if err != nil {
			return reflect.Value{}, fail(raw, target, err)
		}
		return reflect.ValueOf(b).Convert(target), nil
	case reflect.Struct:
		if target == timeType {
			// only an exact time.Time matches, handled above
			return reflect.Value{}, fail(raw, target, nil)
		}
		return reflect.Value{}, fail(raw, target, nil)
	default:
		return reflect.Value{}, fail(raw, target, nil)
	}
	return out, nil
}

func fail(raw any, target reflect.Type, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: cannot convert %T to %s: %v", ErrConversion, raw, target, cause)
	}
	return fmt.Errorf("%w: cannot convert %T to %s", ErrConversion, raw, target)
}

func toBool(rv reflect.Value) (bool, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch rv.Int() {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return false, fmt.Errorf("integer %d is not 0 or 1", rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch rv.Uint() {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return false, fmt.Errorf("integer %d is not 0 or 1", rv.Uint())
	case reflect.String:
		return strconv.ParseBool(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return strconv.ParseBool(string(rv.Bytes()))
		}
	}
	return false, sourceKindError(rv)
}

func toInt64(rv reflect.Value) (int64, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("value %v has a fractional part", f)
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("value %v overflows int64", f)
		}
		return int64(f), nil
	case reflect.String:
		return strconv.ParseInt(rv.String(), 10, 64)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return strconv.ParseInt(string(rv.Bytes()), 10, 64)
		}
	}
	return 0, sourceKindError(rv)
}

func toUint64(rv reflect.Value) (uint64, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < 0 {
			return 0, fmt.Errorf("negative value %d", i)
		}
		return uint64(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("value %v has a fractional part", f)
		}
		if f < 0 || f >= math.MaxUint64 {
			return 0, fmt.Errorf("value %v overflows uint64", f)
		}
		return uint64(f), nil
	case reflect.String:
		return strconv.ParseUint(rv.String(), 10, 64)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return strconv.ParseUint(string(rv.Bytes()), 10, 64)
		}
	}
	return 0, sourceKindError(rv)
}

func toFloat64(rv reflect.Value) (float64, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return strconv.ParseFloat(rv.String(), 64)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return strconv.ParseFloat(string(rv.Bytes()), 64)
		}
	}
	return 0, sourceKindError(rv)
}

func toString(rv reflect.Value) (string, error) {
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return t.Format(time.RFC3339Nano), nil
		}
	}
	return "", sourceKindError(rv)
}

func toBytes(rv reflect.Value) ([]byte, error) {
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Bytes(), nil
		}
	case reflect.String:
		return []byte(rv.String()), nil
	}
	return nil, sourceKindError(rv)
}

func sourceKindError(rv reflect.Value) error {
	return fmt.Errorf("unsupported source kind %s", rv.Kind())
}
