package variant

import (
	"bytes"
	"fmt"
	"time"
)

// Value is a tagged union over the b-CAP wire's VARIANT value space: one
// variant per element type (§3), plus an explicit array flag that applies
// uniformly to every element type, plus the heterogeneous Variant-array
// case where elems themselves carry independent tags. This mirrors the
// "Dynamic value type" design note: a statically-typed tagged union with
// total Encode/Decode functions, rather than runtime type inspection.
type Value struct {
	tag   VT
	array bool

	i64   int64   // integer-family scalars: I1/I2/I4/I8/UI1/UI2/UI4/UI8/Err, Cy ticks, Bool as 0 or -1
	f64   float64 // R4/R8/Date scalars
	str   string  // BSTR scalar
	bytes []byte  // UI1|ARRAY raw byte run
	elems []Value // element values for any other array (homogeneous scalar, or heterogeneous Variant)
}

// Empty returns the absent value (VT_EMPTY on encode; VT_EMPTY and VT_NULL
// both decode to it per §3).
func Empty() Value { return Value{tag: VTEmpty} }

// IsEmpty reports whether v is the absent value.
func (v Value) IsEmpty() bool { return !v.array && (v.tag == VTEmpty || v.tag == VTNull) }

// Tag returns the element type (never includes the ARRAY flag).
func (v Value) Tag() VT { return v.tag }

// IsArray reports whether v carries zero or more elements rather than one scalar.
func (v Value) IsArray() bool { return v.array }

// Scalar constructors. Each sets tag/array and exactly the payload field
// decode for that tag will read back out.
func I1(n int8) Value    { return Value{tag: VTI1, i64: int64(n)} }
func I2(n int16) Value   { return Value{tag: VTI2, i64: int64(n)} }
func I4(n int32) Value   { return Value{tag: VTI4, i64: int64(n)} }
func I8(n int64) Value   { return Value{tag: VTI8, i64: n} }
func UI1(n uint8) Value  { return Value{tag: VTUI1, i64: int64(n)} }
func UI2(n uint16) Value { return Value{tag: VTUI2, i64: int64(n)} }
func UI4(n uint32) Value { return Value{tag: VTUI4, i64: int64(n)} }
func UI8(n uint64) Value { return Value{tag: VTUI8, i64: int64(n)} }
func R4(f float32) Value { return Value{tag: VTR4, f64: float64(f)} }
func R8(f float64) Value { return Value{tag: VTR8, f64: f} }

// CyTicks builds a VT_CY value from its raw fixed-point wire ticks (an
// 8-byte signed integer on the wire, not a double). No operation in the
// catalogue (internal/ops) emits one, but the wire format allows a server
// to send one back, so decode must produce it (SPEC_FULL §3.1).
func CyTicks(ticks int64) Value { return Value{tag: VTCy, i64: ticks} }

// DateTime builds a VT_DATE value from a UTC instant (§3, §8).
func DateTime(t time.Time) Value { return Value{tag: VTDate, f64: DateToOLE(t)} }

// BSTR builds a string value.
func BSTR(s string) Value { return Value{tag: VTBSTR, str: s} }

// ErrorCode builds a VT_ERROR value carrying a raw HRESULT.
func ErrorCode(hr int32) Value { return Value{tag: VTErr, i64: int64(hr)} }

// Bool builds a boolean value. Encoding writes exactly -1 for true, 0 for
// false; any non-zero value decodes as true (§3 invariants).
func Bool(b bool) Value {
	v := Value{tag: VTBool}
	if b {
		v.i64 = -1
	}
	return v
}

// Bytes builds the special-cased byte-run array (VT_UI1|ARRAY stored as a
// raw run, no per-element framing).
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{tag: VTUI1, array: true, bytes: cp}
}

// ArrayOf builds a homogeneous array of elemTag (any scalar tag other than
// UI1, which must use Bytes). The caller is responsible for elems all
// sharing elemTag; ArrayOf does not re-derive it by inspection (Design
// Notes: "expose both constructions explicitly ... the sniffing is a
// convenience, not a contract").
func ArrayOf(elemTag VT, elems []Value) Value {
	return Value{tag: elemTag, array: true, elems: append([]Value(nil), elems...)}
}

// VariantArray builds a heterogeneous array: each element keeps its own
// tag/array-ness and is encoded/decoded as a full recursive triple.
func VariantArray(elems []Value) Value {
	return Value{tag: VTVariant, array: true, elems: append([]Value(nil), elems...)}
}

// Int returns the integer-family scalar payload (I1/I2/I4/I8/UI1/UI2/UI4/UI8/Err, Cy ticks).
func (v Value) Int() int64 { return v.i64 }

// Float returns the floating scalar payload (R4/R8, and the raw OLE date of a Date).
func (v Value) Float() float64 { return v.f64 }

// Str returns the BSTR scalar payload.
func (v Value) Str() string { return v.str }

// BoolVal reports the decoded boolean (any non-zero payload is true).
func (v Value) BoolVal() bool { return v.i64 != 0 }

// Time decodes a VT_DATE scalar to a UTC time.Time.
func (v Value) Time() time.Time { return OLEToDate(v.f64) }

// RawBytes returns the raw byte run of a VT_UI1|ARRAY value.
func (v Value) RawBytes() []byte { return v.bytes }

// Elems returns the element values of any non-byte array.
func (v Value) Elems() []Value { return v.elems }

func (v Value) GoString() string {
	if v.tag == VTBSTR && !v.array {
		return fmt.Sprintf("variant.BSTR(%q)", v.str)
	}
	return fmt.Sprintf("variant.Value{tag:%s array:%v}", v.tag, v.array)
}

// Equal reports deep structural equality, used by round-trip tests over
// arrays and heterogeneous Variant arrays (§8).
func (v Value) Equal(o Value) bool {
	if v.tag != o.tag || v.array != o.array {
		return false
	}
	if !v.array && v.IsEmpty() && o.IsEmpty() {
		return true
	}
	if v.array {
		if v.tag == VTUI1 {
			return bytes.Equal(v.bytes, o.bytes)
		}
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	}
	switch v.tag {
	case VTBSTR:
		return v.str == o.str
	case VTR4, VTR8, VTDate:
		return v.f64 == o.f64
	default:
		return v.i64 == o.i64
	}
}
