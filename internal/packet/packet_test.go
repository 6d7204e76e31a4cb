package packet

import (
	"testing"

	"github.com/keioku/bcap-go/internal/hresult"
	"github.com/keioku/bcap-go/internal/variant"
)

func TestSerializeDeserialize_DatagramRoundTrip(t *testing.T) {
	args := []variant.Value{variant.BSTR("b-CAP.rc8"), variant.I4(42)}
	raw, err := Serialize(7, 1, 3, args, Options{Stream: false})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if raw[0] != soh || raw[len(raw)-1] != eot {
		t.Fatalf("missing SOH/EOT framing: % X", raw)
	}
	totalFromHeader := int(raw[1]) | int(raw[2])<<8 | int(raw[3])<<16 | int(raw[4])<<24
	if totalFromHeader != len(raw) {
		t.Fatalf("length field = %d, actual = %d", totalFromHeader, len(raw))
	}

	got, err := Deserialize(raw, false)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if got.Serial != 7 || got.VersionOrRetry != 1 {
		t.Fatalf("got serial=%d version=%d", got.Serial, got.VersionOrRetry)
	}
	if got.HR != 3 {
		t.Fatalf("got funcID/HR = %d, want 3", got.HR)
	}
	if len(got.Args) != 2 || got.Args[0].Str() != "b-CAP.rc8" || got.Args[1].Int() != 42 {
		t.Fatalf("args mismatch: %+v", got.Args)
	}
}

func TestSerializeDeserialize_StreamUncompressed(t *testing.T) {
	raw, err := Serialize(1, 1, 2, nil, Options{Stream: true})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if raw[len(raw)-2] != modeUncompressed {
		t.Fatalf("mode byte = %d, want modeUncompressed", raw[len(raw)-2])
	}
	got, err := Deserialize(raw, true)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if got.HR != hresult.Code(2) {
		t.Fatalf("got func/HR = %d, want 2", got.HR)
	}
	if len(got.Args) != 0 {
		t.Fatalf("expected no args, got %+v", got.Args)
	}
}

func TestSerializeDeserialize_StreamCompressed(t *testing.T) {
	args := []variant.Value{variant.BSTR("this string should compress reasonably well since it repeats repeats repeats")}
	raw, err := Serialize(5, 1, 1, args, Options{Stream: true, Compress: true, Level: -1})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if raw[len(raw)-2] != modeCompressed {
		t.Fatalf("mode byte = %d, want modeCompressed", raw[len(raw)-2])
	}
	got, err := Deserialize(raw, true)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if len(got.Args) != 1 || got.Args[0].Str() != args[0].Str() {
		t.Fatalf("round trip mismatch: %+v", got.Args)
	}
}

func TestDeserialize_RejectsMissingFraming(t *testing.T) {
	cases := [][]byte{
		nil,
		{soh},
		append([]byte{0x00}, make([]byte, HeaderLen)...), // wrong SOH
	}
	for i, c := range cases {
		if _, err := Deserialize(c, false); err == nil {
			t.Fatalf("case %d: expected framing error, got nil", i)
		}
	}
}

func TestDeserialize_WrongEOTRejected(t *testing.T) {
	raw, err := Serialize(1, 1, 2, nil, Options{Stream: false})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	raw[len(raw)-1] = 0xFF
	if _, err := Deserialize(raw, false); err == nil {
		t.Fatalf("expected error for corrupted EOT")
	}
}

func TestPacket_ResultDefaultsToEmpty(t *testing.T) {
	p := Packet{}
	if !p.Result().IsEmpty() {
		t.Fatalf("expected empty result for a packet with no args")
	}
}
