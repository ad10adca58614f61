// Package jsonbridge converts between value.Value and the Go value shapes
// encoding/json produces and consumes: nil, bool, json.Number/float64,
// string, []any, and map[string]any.
//
// No third-party JSON package changes the shape of this bridge — every one
// of them still decodes JSON text into that same any-shaped tree before a
// caller can walk it value-by-value, so conversion is written directly
// against encoding/json (see DESIGN.md for the justification entry).
package jsonbridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/wyre/errs"
	"github.com/arloliu/wyre/value"
)

// ToJSON converts v to a standard JSON value shape, per spec §4.5. It fails
// for Special::None, Special::Define, Special::Forget, and Alias (none of
// which have a JSON representation), for Negative(n) with n > 2^63, and for
// any non-finite Float.
func ToJSON(v value.Value) (any, error) {
	switch v.Kind() {
	case value.KindSpecial:
		switch v.SpecialTag() {
		case value.SpecialNull:
			return nil, nil
		case value.SpecialNone:
			return nil, errs.ErrUnsupportedNone
		case value.SpecialDefine:
			return nil, errs.ErrUnsupportedDefine
		case value.SpecialForget:
			return nil, errs.ErrUnsupportedForget
		}
	case value.KindInteger:
		switch v.IntKind() {
		case value.IntBool:
			return v.Bool(), nil
		case value.IntPositive:
			return json.Number(strconv.FormatUint(v.Magnitude(), 10)), nil
		case value.IntNegative:
			n := v.Magnitude()
			if n > 1<<63 {
				return nil, fmt.Errorf("magnitude %d: %w", n, errs.ErrNegativeIntegerTooBig)
			}
			var iv int64
			if n == 1<<63 {
				iv = math.MinInt64
			} else {
				iv = -int64(n)
			}
			return json.Number(strconv.FormatInt(iv, 10)), nil
		}
	case value.KindFloat:
		f := v.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%v: %w", f, errs.ErrBadFloat)
		}
		return f, nil
	case value.KindString:
		return v.Str(), nil
	case value.KindArray:
		elems := v.Elems()
		out := make([]any, 0, len(elems))
		for _, e := range elems {
			je, err := ToJSON(e)
			if err != nil {
				return nil, err
			}
			out = append(out, je)
		}
		return out, nil
	case value.KindObject:
		fields := v.Fields()
		out := make(map[string]any, len(fields))
		for k, fv := range fields {
			jv, err := ToJSON(fv)
			if err != nil {
				return nil, err
			}
			out[k] = jv
		}
		return out, nil
	case value.KindAlias:
		return nil, errs.ErrUnsupportedAlias
	}
	return nil, fmt.Errorf("jsonbridge: unhandled kind %s", v.Kind())
}

// FromJSON converts a standard JSON value shape to a value.Value. It never
// fails: every JSON value has a representation (spec §4.5). j is expected
// to be one of the shapes encoding/json produces when decoded with
// json.Decoder.UseNumber(): nil, bool, json.Number, float64, string,
// []any, or map[string]any.
func FromJSON(j any) value.Value {
	switch t := j.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(t)
	case json.Number:
		return numberToValue(t)
	case float64:
		return floatToValue(t)
	case string:
		return value.String(t)
	case []any:
		elems := make([]value.Value, 0, len(t))
		for _, e := range t {
			elems = append(elems, FromJSON(e))
		}
		return value.Array(elems)
	case map[string]any:
		fields := make(map[string]value.Value, len(t))
		for k, v := range t {
			fields[k] = FromJSON(v)
		}
		return value.Object(fields)
	default:
		// Unreachable for any value produced by encoding/json, but fall
		// back to a best-effort string rather than panicking.
		return value.String(fmt.Sprintf("%v", t))
	}
}

// numberToValue classifies a json.Number per spec §4.5: positive integer
// becomes Positive, negative integer becomes Negative, anything else
// (fractional, or too large for either integer form) becomes Float.
func numberToValue(n json.Number) value.Value {
	if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
		return value.Positive(u)
	}
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		if i < 0 {
			return value.Negative(negMagnitude(i))
		}
		return value.Positive(uint64(i))
	}
	f, err := n.Float64()
	if err != nil {
		return value.Float(math.NaN())
	}
	return floatToValue(f)
}

// floatToValue recognizes float64 values that are exactly integral and
// within the safely-representable integer range, converting them to
// Positive/Negative instead of a lossy Float (spec §4.5).
func floatToValue(f float64) value.Value {
	if math.Trunc(f) != f || math.IsInf(f, 0) || math.IsNaN(f) {
		return value.Float(f)
	}
	const maxSafeInt = 1 << 53
	if f >= 0 && f <= maxSafeInt {
		return value.Positive(uint64(f))
	}
	if f < 0 && f >= -maxSafeInt {
		return value.Negative(negMagnitude(int64(f)))
	}
	return value.Float(f)
}

// negMagnitude returns the absolute value of a negative int64 as a uint64,
// handling math.MinInt64 without overflow.
func negMagnitude(i int64) uint64 {
	if i == math.MinInt64 {
		return 1 << 63
	}
	return uint64(-i)
}

// MarshalJSON encodes v as JSON text.
func MarshalJSON(v value.Value) ([]byte, error) {
	j, err := ToJSON(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes JSON text into a value.Value. Integer-valued JSON
// numbers are parsed with json.Decoder.UseNumber() and mapped to
// Positive/Negative exactly rather than losing precision through float64
// (spec §4.5 expansion).
func UnmarshalJSON(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var j any
	if err := dec.Decode(&j); err != nil {
		return value.Value{}, fmt.Errorf("jsonbridge: decode: %w", err)
	}
	return FromJSON(j), nil
}
