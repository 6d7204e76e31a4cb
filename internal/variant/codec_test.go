package variant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/keioku/bcap-go/internal/wire"
)

func roundTrip(t *testing.T, v Value) Value {
	t.Helper()
	enc, err := Encode(v)
	require.NoError(t, err)
	c := wire.NewCursor(enc)
	got, err := Decode(c)
	require.NoError(t, err)
	require.Equal(t, c.Len(), 0)
	return got
}

func TestScalarRoundTrip(t *testing.T) {
	cases := []Value{
		Empty(),
		I1(-12),
		I2(-1234),
		I4(-123456),
		I8(-123456789012),
		UI1(200),
		UI2(50000),
		UI4(3000000000),
		UI8(18000000000000000000),
		R4(3.5),
		R8(-2.25),
		BSTR("hello, 日本語"),
		Bool(true),
		Bool(false),
		ErrorCode(-2147467259),
		CyTicks(123456789),
	}
	for _, v := range cases {
		t.Run(v.Tag().String(), func(t *testing.T) {
			got := roundTrip(t, v)
			require.True(t, v.Equal(got), "got %#v, want %#v", got, v)
		})
	}
}

func TestDateRoundTrip(t *testing.T) {
	want := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	got := roundTrip(t, DateTime(want))
	require.WithinDuration(t, want, got.Time(), time.Millisecond)
}

func TestBoolDecode_AnyNonzeroIsTrue(t *testing.T) {
	enc, err := Encode(Bool(true))
	require.NoError(t, err)
	// corrupt the payload to a nonzero value other than -1/0xFFFF
	enc[len(enc)-2] = 0x02
	enc[len(enc)-1] = 0x00
	c := wire.NewCursor(enc)
	got, err := Decode(c)
	require.NoError(t, err)
	require.True(t, got.BoolVal())
}

func TestBytesArrayRoundTrip(t *testing.T) {
	want := Bytes([]byte{0x01, 0x02, 0x03, 0xFF, 0x00})
	got := roundTrip(t, want)
	require.Equal(t, want.RawBytes(), got.RawBytes())
	require.True(t, got.IsArray())
	require.Equal(t, VTUI1, got.Tag())
}

func TestHomogeneousArrayRoundTrip(t *testing.T) {
	want := ArrayOf(VTI4, []Value{I4(1), I4(2), I4(3)})
	got := roundTrip(t, want)
	require.True(t, want.Equal(got))
}

func TestVariantArrayRoundTrip(t *testing.T) {
	want := VariantArray([]Value{I4(1), BSTR("two"), R8(3.5), Bool(true)})
	got := roundTrip(t, want)
	require.True(t, want.Equal(got))
}

func TestEmptyArraySniffsToEmpty(t *testing.T) {
	v, err := FromAny([]any{})
	require.NoError(t, err)
	require.True(t, v.IsEmpty())
}

func TestFromAny_HeterogeneousSniffsToVariantArray(t *testing.T) {
	v, err := FromAny([]any{int32(1), "two"})
	require.NoError(t, err)
	require.True(t, v.IsArray())
	require.Equal(t, VTVariant, v.Tag())
}

func TestFromAny_HomogeneousSniffsToScalarArray(t *testing.T) {
	v, err := FromAny([]any{int32(1), int32(2), int32(3)})
	require.NoError(t, err)
	require.True(t, v.IsArray())
	require.Equal(t, VTI4, v.Tag())
}

func TestToArgs(t *testing.T) {
	args, err := ToArgs(int32(5), "name", true, 1.5)
	require.NoError(t, err)
	require.Len(t, args, 4)
	require.Equal(t, VTI4, args[0].Tag())
	require.Equal(t, VTBSTR, args[1].Tag())
	require.Equal(t, VTBool, args[2].Tag())
	require.Equal(t, VTR8, args[3].Tag())
}

func TestFromAny_UnsupportedType(t *testing.T) {
	_, err := FromAny(struct{}{})
	require.Error(t, err)
}

func TestDecode_UnsupportedElementType(t *testing.T) {
	raw := wire.PutU16(nil, uint16(9)) // 9 is reserved/unused in the VT table
	raw = wire.PutU32(raw, 1)
	_, err := Decode(wire.NewCursor(raw))
	require.Error(t, err)
}
