package packet

import (
	"testing"

	"github.com/keioku/bcap-go/internal/variant"
)

// FuzzDeserializeInvalid ensures Deserialize never panics on malformed or
// truncated input, datagram or stream framed, seeded from real packets so
// the fuzzer has valid framing to mutate from.
func FuzzDeserializeInvalid(f *testing.F) {
	dgram, err := Serialize(7, 1, 3, []variant.Value{variant.BSTR("b-CAP.rc8"), variant.I4(42)}, Options{Stream: false})
	if err == nil {
		f.Add(dgram, false)
	}
	stream, err := Serialize(1, 0, 1, []variant.Value{variant.BSTR("")}, Options{Stream: true, Compress: true, Level: -1})
	if err == nil {
		f.Add(stream, true)
	}
	f.Add([]byte{}, false)
	f.Add([]byte{soh, eot}, false)
	f.Fuzz(func(t *testing.T, data []byte, stream bool) {
		_, _ = Deserialize(data, stream)
	})
}
