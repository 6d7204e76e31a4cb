package variant

import (
	"encoding/binary"
	"unicode/utf16"
)

// encodeBSTR renders s as UTF-16LE bytes. The byte length is always even
// (§3 invariants).
func encodeBSTR(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[i*2:], u)
	}
	return b
}

// decodeBSTR is the inverse of encodeBSTR.
func decodeBSTR(b []byte) string {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return string(utf16.Decode(units))
}
