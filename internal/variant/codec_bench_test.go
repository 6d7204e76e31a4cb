package variant

import (
	"testing"

	"github.com/keioku/bcap-go/internal/wire"
)

func benchmarkArgs() []Value {
	return []Value{
		I4(42),
		BSTR("b-CAP.rc8"),
		R8(3.14159),
		ArrayOf(VTI4, []Value{I4(1), I4(2), I4(3), I4(4), I4(5)}),
	}
}

func BenchmarkEncode_Scalar(b *testing.B) {
	v := I4(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(v)
	}
}

func BenchmarkEncode_BSTR(b *testing.B) {
	v := BSTR("b-CAP.rc8")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(v)
	}
}

func BenchmarkEncode_VariantArray(b *testing.B) {
	v := VariantArray(benchmarkArgs())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(v)
	}
}

func BenchmarkDecode_VariantArray(b *testing.B) {
	v := VariantArray(benchmarkArgs())
	enc, err := Encode(v)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := wire.NewCursor(enc)
		_, _ = Decode(c)
	}
}
