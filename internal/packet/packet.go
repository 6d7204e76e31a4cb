// Package packet implements the b-CAP outer packet framer: header, length,
// serial, version/retry, payload (with optional stream-only compression),
// and footer (§3, §4.3).
package packet

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/keioku/bcap-go/internal/hresult"
	"github.com/keioku/bcap-go/internal/variant"
	"github.com/keioku/bcap-go/internal/wire"
)

const (
	soh byte = 0x01
	eot byte = 0x04

	modeUncompressed byte = 0
	modeCompressed   byte = 1

	// HeaderLen is SOH(1) + length(4) + serial(2) + versionOrRetry(2).
	HeaderLen = 1 + 4 + 2 + 2
)

// Options controls how Serialize builds the outer packet.
type Options struct {
	// Stream selects stream-transport framing: a trailing compression-mode
	// byte before EOT, and compression eligibility. false means datagram
	// framing: no mode byte, compression never applied.
	Stream bool
	// Compress requests DEFLATE/zlib compression of the payload. Ignored
	// (treated as false) when Stream is false.
	Compress bool
	// Level is the zlib compression level, [-1, 9]; -1 is the library default.
	Level int
}

// Packet is a fully decoded b-CAP response (or, symmetrically, the
// logical content of a request) after the outer framing has been removed.
type Packet struct {
	Serial         uint16
	VersionOrRetry uint16
	// HR carries the function ID on a request and the HRESULT status on a
	// response; both occupy the same 32-bit signed slot on the wire (§3).
	HR   hresult.Code
	Args []variant.Value
}

// Serialize builds a complete wire packet for one request (§4.3).
func Serialize(serial, versionOrRetry uint16, funcID int32, args []variant.Value, opts Options) ([]byte, error) {
	payload, err := serializeFuncInfoAndArgs(funcID, args)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderLen+len(payload)+4)
	out = append(out, soh)
	out = wire.PutU32(out, 0) // length placeholder, backfilled below
	out = wire.PutU16(out, serial)
	out = wire.PutU16(out, versionOrRetry)

	if opts.Stream && opts.Compress {
		compressed, err := deflate(payload, opts.Level)
		if err != nil {
			return nil, err
		}
		out = wire.PutU32(out, uint32(len(payload)))
		out = append(out, compressed...)
	} else {
		out = append(out, payload...)
	}

	if opts.Stream {
		if opts.Compress {
			out = append(out, modeCompressed)
		} else {
			out = append(out, modeUncompressed)
		}
	}
	out = append(out, eot)

	wire.LittleEndianPutUint32At(out, 1, uint32(len(out)))
	return out, nil
}

// serializeFuncInfoAndArgs builds the payload before compression/mode/footer:
// function ID, argument count, then each argument as a 4-byte length
// prefix followed by its encoded tag+count+payload triple (§3, §4.3).
func serializeFuncInfoAndArgs(funcID int32, args []variant.Value) ([]byte, error) {
	out := wire.PutI32(nil, funcID)
	out = wire.PutU16(out, uint16(len(args)))
	for _, a := range args {
		enc, err := variant.Encode(a)
		if err != nil {
			return nil, err
		}
		out = wire.PutU32(out, uint32(len(enc)))
		out = append(out, enc...)
	}
	return out, nil
}

// Deserialize unwraps a complete wire packet into its serial, version/retry
// field, HRESULT (or function ID, on a request), and decoded arguments
// (§4.3 deserialize). stream selects whether a compression-mode byte
// precedes EOT.
func Deserialize(data []byte, stream bool) (Packet, error) {
	if len(data) < HeaderLen+1 || data[0] != soh || data[len(data)-1] != eot {
		return Packet{}, hresult.New(hresult.EInvalidPacket, "malformed b-CAP packet framing")
	}

	c := wire.NewCursor(data)
	if _, err := c.ReadByte(); err != nil { // SOH
		return Packet{}, err
	}
	if _, err := c.ReadU32(); err != nil { // total length, not re-validated here
		return Packet{}, err
	}
	serial, err := c.ReadU16()
	if err != nil {
		return Packet{}, err
	}
	versionOrRetry, err := c.ReadU16()
	if err != nil {
		return Packet{}, err
	}

	bodyEnd := len(data) - 1 // exclude EOT
	if stream {
		bodyEnd--
	}
	body := data[c.Pos():bodyEnd]

	if stream {
		mode := data[len(data)-2]
		if mode == modeCompressed {
			bc := wire.NewCursor(body)
			if _, err := bc.ReadU32(); err != nil { // uncompressed length, informational
				return Packet{}, err
			}
			inflated, err := inflate(bc.Remaining())
			if err != nil {
				return Packet{}, hresult.New(hresult.EInvalidPacket, "zlib inflate failed: "+err.Error())
			}
			body = inflated
		}
	}

	bc := wire.NewCursor(body)
	hr, err := bc.ReadI32()
	if err != nil {
		return Packet{}, err
	}
	argCount, err := bc.ReadU16()
	if err != nil {
		return Packet{}, err
	}
	args := make([]variant.Value, 0, argCount)
	for i := uint16(0); i < argCount; i++ {
		if _, err := bc.ReadU32(); err != nil { // per-argument length prefix, not trusted (§4.3, §9)
			return Packet{}, err
		}
		v, err := variant.Decode(bc)
		if err != nil {
			return Packet{}, err
		}
		args = append(args, v)
	}

	return Packet{Serial: serial, VersionOrRetry: versionOrRetry, HR: hresult.Code(hr), Args: args}, nil
}

// Result returns the caller-visible "return value": absent if the argument
// list is empty, otherwise the first argument. Additional arguments are
// discarded (§4.3, Design Notes: multi-value return is not part of the surface).
func (p Packet) Result() variant.Value {
	if len(p.Args) == 0 {
		return variant.Empty()
	}
	return p.Args[0]
}

func deflate(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
