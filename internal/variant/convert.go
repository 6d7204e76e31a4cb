package variant

import (
	"fmt"
	"time"
)

// FromAny sniffs v's Go type and builds the corresponding Value, the way
// the reference client sniffs a Python value's type at call time
// (original_source/bcap/b_cap_converter.py: _DICT_TYPE_TO_VT). This is a
// convenience layered on top of the explicit constructors (I4, BSTR,
// ArrayOf, VariantArray, ...); it is not itself part of the wire contract.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Empty(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int8:
		return I1(x), nil
	case int16:
		return I2(x), nil
	case int32:
		return I4(x), nil
	case int:
		return I4(int32(x)), nil
	case int64:
		return I8(x), nil
	case uint8:
		return UI1(x), nil
	case uint16:
		return UI2(x), nil
	case uint32:
		return UI4(x), nil
	case uint64:
		return UI8(x), nil
	case uint:
		return UI4(uint32(x)), nil
	case float32:
		return R4(x), nil
	case float64:
		return R8(x), nil
	case string:
		return BSTR(x), nil
	case time.Time:
		return DateTime(x), nil
	case []byte:
		return Bytes(x), nil
	case []Value:
		return sniffArray(append([]Value(nil), x...)), nil
	case []any:
		vals := make([]Value, len(x))
		for i, e := range x {
			cv, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			vals[i] = cv
		}
		return sniffArray(vals), nil
	default:
		return Value{}, fmt.Errorf("variant: cannot convert %T to a VARIANT value", v)
	}
}

// sniffArray decides, at construction time, whether vals share one scalar
// tag (homogeneous array) or must be encoded element-by-element as a
// heterogeneous Variant array (Design Notes: "Homogeneous-array detection").
// An empty list has no type to sniff and becomes the absent value, matching
// the reference client's behavior for `arg == []`.
func sniffArray(vals []Value) Value {
	if len(vals) == 0 {
		return Empty()
	}
	tag := vals[0].tag
	homogeneous := !vals[0].array
	if homogeneous {
		for _, v := range vals[1:] {
			if v.array || v.tag != tag {
				homogeneous = false
				break
			}
		}
	}
	if !homogeneous {
		return VariantArray(vals)
	}
	if tag == VTUI1 {
		b := make([]byte, len(vals))
		for i, v := range vals {
			b[i] = byte(v.i64)
		}
		return Bytes(b)
	}
	return ArrayOf(tag, vals)
}

// ToArgs converts a variadic Go argument list into the ordered Value slice
// a request payload carries (§3 "Argument list").
func ToArgs(args ...any) ([]Value, error) {
	out := make([]Value, len(args))
	for i, a := range args {
		v, err := FromAny(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
