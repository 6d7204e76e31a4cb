package transport

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/keioku/bcap-go/internal/hresult"
	"github.com/keioku/bcap-go/internal/logging"
	"github.com/keioku/bcap-go/internal/metrics"
	"github.com/keioku/bcap-go/internal/packet"
	"github.com/keioku/bcap-go/internal/variant"
)

// protocolVersion is the 16-bit value the stream transport sends in the
// field the wire format shares with the datagram transport's retry count
// (§3 "Packet"); the source always sends 1.
const protocolVersion = 1

// Stream is the connection-oriented (TCP) transport state machine (§4.4).
// One reentrant-equivalent mutex guards connect/disconnect/configuration/
// request for their full duration (§5).
type Stream struct {
	mu      sync.Mutex
	conn    net.Conn
	timeout time.Duration
	serial  uint16

	compress bool
	level    int
}

// NewStream constructs an unconnected stream transport.
func NewStream() *Stream { return &Stream{} }

func (s *Stream) Connect(ctx context.Context, endpoint string, timeout time.Duration, retry int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	addr, err := ResolveEndpoint(endpoint)
	if err != nil {
		metrics.IncError(mapErrToMetric(err))
		return err
	}
	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		wrap := fmt.Errorf("%w: %v", ErrConnect, err)
		metrics.IncError(mapErrToMetric(wrap))
		return wrap
	}
	s.conn = conn
	s.timeout = timeout
	s.serial = 1 // serial starts at 1 on connect (§4.4)
	metrics.SetConnected("tcp", true)
	logging.Component("stream").Info("stream_connected", "addr", addr)
	return nil
}

// Disconnect closes the socket. The best-effort service_stop call is the
// client facade's responsibility, not the transport's (§4.6).
func (s *Stream) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	metrics.SetConnected("tcp", false)
	return err
}

// SetTimeout stores the deadline applied to each subsequent Request.
// Calling it before Connect is a programmer error the source handles by
// dereferencing an unset socket (§9 open question); here it is harmless
// since the deadline is only applied lazily, at send/receive time.
func (s *Stream) SetTimeout(d time.Duration) {
	s.mu.Lock()
	s.timeout = d
	s.mu.Unlock()
}

func (s *Stream) GetTimeout() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeout
}

func (s *Stream) SetCompression(enabled bool, level int) error {
	if enabled {
		if err := checkCompressionLevel(level); err != nil {
			metrics.IncError(mapErrToMetric(err))
			return err
		}
	}
	s.mu.Lock()
	s.compress = enabled
	s.level = level
	s.mu.Unlock()
	return nil
}

// Request sends one request and blocks until the matching final response
// arrives, consuming any interim S_EXECUTING replies along the way (§4.4).
func (s *Stream) Request(funcID int32, args []variant.Value) (hresult.Code, variant.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		err := fmt.Errorf("%w: stream transport has no active connection", ErrNotConnected)
		metrics.IncError(mapErrToMetric(err))
		return 0, variant.Empty(), err
	}

	serial, next := nextSerial(s.serial)
	s.serial = next

	wireBytes, err := packet.Serialize(serial, protocolVersion, funcID, args, packet.Options{
		Stream:   true,
		Compress: s.compress,
		Level:    s.level,
	})
	if err != nil {
		metrics.IncError(mapErrToMetric(err))
		return 0, variant.Empty(), err
	}

	if s.timeout > 0 {
		_ = s.conn.SetDeadline(time.Now().Add(s.timeout))
	}

	metrics.IncRequest("tcp")
	if _, err := s.conn.Write(wireBytes); err != nil {
		wrap := fmt.Errorf("%w: %v", ErrSend, err)
		metrics.IncError(mapErrToMetric(wrap))
		s.closeLocked()
		return 0, variant.Empty(), wrap
	}
	metrics.AddBytesSent("tcp", len(wireBytes))

	for {
		pkt, err := s.readPacket()
		if err != nil {
			wrap := fmt.Errorf("%w: %v", ErrRecv, err)
			metrics.IncError(mapErrToMetric(wrap))
			s.closeLocked()
			return 0, variant.Empty(), wrap
		}
		if pkt.Serial != serial {
			continue // stale/spurious response, keep waiting (§4.4)
		}
		if pkt.HR == hresult.SExecuting {
			metrics.IncExecutingContinuation("tcp")
			continue
		}
		if pkt.HR.Failed() {
			metrics.IncServerError("tcp")
		}
		return pkt.HR, pkt.Result(), nil
	}
}

// closeLocked closes the connection; caller must hold s.mu. No partial
// state survives a failed request: the connection is closed outright (§4.4).
func (s *Stream) closeLocked() {
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	metrics.SetConnected("tcp", false)
}

// readPacket resynchronizes on SOH byte-by-byte, reads the declared length,
// and rejects frames not ending in EOT, restarting resync on any framing
// violation (§4.4 "Receive framing").
func (s *Stream) readPacket() (packet.Packet, error) {
	for {
		if err := s.resyncToSOH(); err != nil {
			return packet.Packet{}, err
		}

		lenBuf := make([]byte, 4)
		if _, err := io.ReadFull(s.conn, lenBuf); err != nil {
			return packet.Packet{}, err
		}
		total := int(binary.LittleEndian.Uint32(lenBuf))
		if total < packet.HeaderLen+1 {
			continue // malformed length, resync
		}

		rest := make([]byte, total-5) // total includes the SOH + 4-byte length already consumed
		if _, err := io.ReadFull(s.conn, rest); err != nil {
			return packet.Packet{}, err
		}
		metrics.AddBytesRecv("tcp", total)

		full := make([]byte, 0, total)
		full = append(full, 0x01)
		full = append(full, lenBuf...)
		full = append(full, rest...)

		if full[len(full)-1] != 0x04 {
			continue // last byte not EOT, discard and resync
		}

		pkt, err := packet.Deserialize(full, true)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return packet.Packet{}, err
			}
			continue // malformed payload, discard and resync
		}
		return pkt, nil
	}
}

func (s *Stream) resyncToSOH() error {
	b := make([]byte, 1)
	for {
		if _, err := io.ReadFull(s.conn, b); err != nil {
			return err
		}
		if b[0] == 0x01 {
			return nil
		}
	}
}
