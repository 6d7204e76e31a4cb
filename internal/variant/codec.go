// Package variant implements the b-CAP VARIANT codec: encoding and
// decoding of individual Values (and arrays of Values) under the wire's
// tag+count+payload scheme (§3, §4.2).
package variant

import (
	"github.com/keioku/bcap-go/internal/hresult"
	"github.com/keioku/bcap-go/internal/wire"
)

// Encode renders v as tag + element-count + payload, recursing into
// elements for arrays (§4.2 encode_value).
func Encode(v Value) ([]byte, error) {
	rawTag := uint16(v.tag)
	if v.array {
		rawTag |= ArrayFlag
	}
	buf := wire.PutU16(nil, rawTag)

	switch {
	case v.array && v.tag == VTUI1:
		buf = wire.PutU32(buf, uint32(len(v.bytes)))
		buf = append(buf, v.bytes...)
		return buf, nil

	case v.array && v.tag == VTVariant:
		buf = wire.PutU32(buf, uint32(len(v.elems)))
		for _, e := range v.elems {
			enc, err := Encode(e)
			if err != nil {
				return nil, err
			}
			buf = append(buf, enc...)
		}
		return buf, nil

	case v.array:
		buf = wire.PutU32(buf, uint32(len(v.elems)))
		for _, e := range v.elems {
			p, err := encodeScalarPayload(v.tag, e)
			if err != nil {
				return nil, err
			}
			buf = append(buf, p...)
		}
		return buf, nil

	default:
		buf = wire.PutU32(buf, 1)
		p, err := encodeScalarPayload(v.tag, v)
		if err != nil {
			return nil, err
		}
		return append(buf, p...), nil
	}
}

// errUnsupported builds the E_CAO_VARIANT_TYPE_NO_SUPPORT carrier for an
// element type this codec cannot (de)serialize.
func errUnsupported(t VT) error {
	return hresult.New(hresult.ECaoVariantTypeNoSupport, "unsupported VARIANT type "+t.String())
}

func encodeScalarPayload(t VT, e Value) ([]byte, error) {
	switch t {
	case VTEmpty, VTNull:
		return nil, nil
	case VTI1:
		return []byte{byte(int8(e.i64))}, nil
	case VTUI1:
		return []byte{byte(e.i64)}, nil
	case VTI2:
		return wire.PutI16(nil, int16(e.i64)), nil
	case VTUI2:
		return wire.PutU16(nil, uint16(e.i64)), nil
	case VTI4:
		return wire.PutI32(nil, int32(e.i64)), nil
	case VTUI4:
		return wire.PutU32(nil, uint32(e.i64)), nil
	case VTI8:
		return wire.PutI64(nil, e.i64), nil
	case VTUI8:
		return wire.PutU64(nil, uint64(e.i64)), nil
	case VTR4:
		return wire.PutF32(nil, float32(e.f64)), nil
	case VTR8:
		return wire.PutF64(nil, e.f64), nil
	case VTCy:
		return wire.PutI64(nil, e.i64), nil
	case VTDate:
		return wire.PutF64(nil, e.f64), nil
	case VTErr:
		return wire.PutI32(nil, int32(e.i64)), nil
	case VTBool:
		return wire.PutI16(nil, int16(e.i64)), nil
	case VTBSTR:
		sb := encodeBSTR(e.str)
		out := wire.PutU32(nil, uint32(len(sb)))
		return append(out, sb...), nil
	default:
		return nil, errUnsupported(t)
	}
}

// Decode reads one tag+count+payload triple from c, recursing for arrays
// (§4.2 decode_value). The on-wire count for a non-array value is ignored
// as a loop bound (it is conventionally 1) per §4.2.
func Decode(c *wire.Cursor) (Value, error) {
	rawTag, err := c.ReadU16()
	if err != nil {
		return Value{}, err
	}
	count, err := c.ReadU32()
	if err != nil {
		return Value{}, err
	}
	isArray := rawTag&ArrayFlag != 0
	elemType := VT(rawTag & ElementMask)

	if elemType == VTEmpty || elemType == VTNull {
		return Empty(), nil
	}

	if !isArray {
		return decodeScalarElement(c, elemType)
	}

	switch elemType {
	case VTVariant:
		elems := make([]Value, 0, count)
		for i := uint32(0); i < count; i++ {
			e, err := Decode(c)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, e)
		}
		return VariantArray(elems), nil
	case VTUI1:
		b, err := c.ReadBytes(int(count))
		if err != nil {
			return Value{}, err
		}
		return Bytes(b), nil
	default:
		if _, ok := fixedWidth(elemType); !ok && elemType != VTBSTR {
			return Value{}, errUnsupported(elemType)
		}
		elems := make([]Value, 0, count)
		for i := uint32(0); i < count; i++ {
			e, err := decodeScalarElement(c, elemType)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, e)
		}
		return ArrayOf(elemType, elems), nil
	}
}

func decodeScalarElement(c *wire.Cursor, t VT) (Value, error) {
	switch t {
	case VTEmpty, VTNull:
		return Empty(), nil
	case VTI1:
		b, err := c.ReadByte()
		return I1(int8(b)), err
	case VTUI1:
		b, err := c.ReadByte()
		return UI1(b), err
	case VTI2:
		v, err := c.ReadI16()
		return I2(v), err
	case VTUI2:
		v, err := c.ReadU16()
		return UI2(v), err
	case VTI4:
		v, err := c.ReadI32()
		return I4(v), err
	case VTUI4:
		v, err := c.ReadU32()
		return UI4(v), err
	case VTI8:
		v, err := c.ReadI64()
		return I8(v), err
	case VTUI8:
		v, err := c.ReadU64()
		return UI8(v), err
	case VTR4:
		v, err := c.ReadF32()
		return R4(v), err
	case VTR8:
		v, err := c.ReadF64()
		return R8(v), err
	case VTCy:
		v, err := c.ReadI64()
		return CyTicks(v), err
	case VTDate:
		v, err := c.ReadF64()
		return Value{tag: VTDate, f64: v}, err
	case VTErr:
		v, err := c.ReadI32()
		return ErrorCode(v), err
	case VTBool:
		v, err := c.ReadI16()
		return Bool(v != 0), err
	case VTBSTR:
		strLen, err := c.ReadU32()
		if err != nil {
			return Value{}, err
		}
		raw, err := c.ReadBytes(int(strLen))
		if err != nil {
			return Value{}, err
		}
		return BSTR(decodeBSTR(raw)), nil
	default:
		return Value{}, errUnsupported(t)
	}
}
