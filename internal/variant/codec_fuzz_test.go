package variant

import (
	"testing"

	"github.com/keioku/bcap-go/internal/wire"
)

// FuzzVariantRoundTrip ensures arbitrary mutations of a valid encoding never
// panic the decoder, and that anything it does manage to decode can always
// be re-encoded: the codec must never produce a Value it cannot serialize
// back out.
func FuzzVariantRoundTrip(f *testing.F) {
	seeds := []Value{
		Empty(),
		I4(-123456),
		UI8(123456789),
		R8(3.14159),
		BSTR("b-CAP.rc8"),
		Bool(true),
		ArrayOf(VTI4, []Value{I4(1), I4(2), I4(3)}),
		VariantArray([]Value{I4(1), BSTR("x"), R8(2.5)}),
		Bytes([]byte{0x01, 0x02, 0x03}),
	}
	for _, v := range seeds {
		enc, err := Encode(v)
		if err != nil {
			continue
		}
		f.Add(enc)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		c := wire.NewCursor(data)
		v, err := Decode(c)
		if err != nil {
			return
		}
		if _, err := Encode(v); err != nil {
			t.Fatalf("re-encode of successfully decoded value failed: %v", err)
		}
	})
}

// FuzzVariantDecodeInvalid ensures Decode never panics on malformed input.
func FuzzVariantDecodeInvalid(f *testing.F) {
	f.Add([]byte{0x08, 0x00, 0x01, 0x00, 0x00, 0x00})
	f.Add([]byte{})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	f.Fuzz(func(t *testing.T, data []byte) {
		c := wire.NewCursor(data)
		_, _ = Decode(c)
	})
}
