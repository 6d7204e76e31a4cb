package variant

// VT is a VARIANT element type tag, as carried in the low 12 bits of the
// 16-bit on-wire type field (§3). The ARRAY flag is tracked separately by
// Value's array flag (Value.IsArray) rather than folded into VT, and any
// reserved high bits are masked off on decode, so switch statements over VT
// never need to mask them out by hand.
type VT uint16

// Element type codes, matching the COM VARIANT constants the b-CAP wire
// format borrows (original_source/bcap/b_cap_converter.py: VarType).
const (
	VTEmpty VT = 0
	VTNull  VT = 1
	VTI2    VT = 2
	VTI4    VT = 3
	VTR4    VT = 4
	VTR8    VT = 5
	VTCy    VT = 6
	VTDate  VT = 7
	VTBSTR  VT = 8
	VTErr   VT = 10
	VTBool  VT = 11
	// VTVariant marks a heterogeneous array element: each element is itself
	// a full tag+count+payload triple, decoded recursively.
	VTVariant VT = 12
	VTI1      VT = 16
	VTUI1     VT = 17
	VTUI2     VT = 18
	VTUI4     VT = 19
	VTI8      VT = 20
	VTUI8     VT = 21
)

// ArrayFlag marks the on-wire tag as carrying `count` elements rather than
// exactly one scalar. ElementMask isolates the element type from the
// ARRAY flag and any reserved high bits (§3: "other high bits reserved").
const (
	ArrayFlag   uint16 = 0x2000
	ElementMask uint16 = 0x0FFF
)

// String renders a VT for diagnostics/log fields.
func (t VT) String() string {
	switch t {
	case VTEmpty:
		return "EMPTY"
	case VTNull:
		return "NULL"
	case VTI1:
		return "I1"
	case VTI2:
		return "I2"
	case VTI4:
		return "I4"
	case VTI8:
		return "I8"
	case VTUI1:
		return "UI1"
	case VTUI2:
		return "UI2"
	case VTUI4:
		return "UI4"
	case VTUI8:
		return "UI8"
	case VTR4:
		return "R4"
	case VTR8:
		return "R8"
	case VTCy:
		return "CY"
	case VTDate:
		return "DATE"
	case VTBSTR:
		return "BSTR"
	case VTErr:
		return "ERROR"
	case VTBool:
		return "BOOL"
	case VTVariant:
		return "VARIANT"
	default:
		return "UNKNOWN"
	}
}

// fixedWidth returns the scalar wire width in bytes for element types with
// a fixed-size payload. BSTR is excluded (it carries its own length
// prefix); Empty/Null carry zero payload bytes.
func fixedWidth(t VT) (int, bool) {
	switch t {
	case VTI1, VTUI1:
		return 1, true
	case VTI2, VTUI2, VTBool:
		return 2, true
	case VTI4, VTUI4, VTR4, VTErr:
		return 4, true
	case VTI8, VTUI8, VTR8, VTCy, VTDate:
		return 8, true
	case VTEmpty, VTNull:
		return 0, true
	default:
		return 0, false
	}
}
