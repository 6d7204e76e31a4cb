package transport

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/keioku/bcap-go/internal/packet"
	"github.com/keioku/bcap-go/internal/variant"
)

// readerConn is a net.Conn backed by a fixed byte slice, enough for
// readPacket to consume without a real socket or a synchronizing peer.
type readerConn struct {
	net.Conn
	r *bytes.Reader
}

func (c *readerConn) Read(p []byte) (int, error)      { return c.r.Read(p) }
func (c *readerConn) SetReadDeadline(time.Time) error { return nil }
func (c *readerConn) SetDeadline(time.Time) error     { return nil }

// FuzzStreamReadPacket ensures readPacket's resync-past-garbage loop never
// panics or hangs on arbitrary byte prefixes ahead of, or instead of, a
// validly framed packet.
func FuzzStreamReadPacket(f *testing.F) {
	valid, err := packet.Serialize(1, protocolVersion, 1, []variant.Value{variant.BSTR("")}, packet.Options{Stream: true})
	if err == nil {
		f.Add(valid)
		f.Add(append([]byte{0x00, 0x00, 0x00, 0x01}, valid...))
	}
	f.Add([]byte{0x01, 0x01, 0x01, 0x01})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		s := &Stream{conn: &readerConn{r: bytes.NewReader(data)}}
		_, _ = s.readPacket() // exhaustion surfaces as io.EOF/io.ErrUnexpectedEOF, not a panic
	})
}
