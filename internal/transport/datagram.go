package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/keioku/bcap-go/internal/hresult"
	"github.com/keioku/bcap-go/internal/logging"
	"github.com/keioku/bcap-go/internal/metrics"
	"github.com/keioku/bcap-go/internal/packet"
	"github.com/keioku/bcap-go/internal/variant"
)

// MaxPacketSize is the hard datagram-transport cap (§4.5, §8 scenario 6).
const MaxPacketSize = 504

// interRetryDelay paces successive retransmissions; the wire protocol does
// not mandate a delay, but retrying in a tight loop against a controller
// that is merely slow to respond wastes the retry budget.
const interRetryDelay = 20 * time.Millisecond

// Datagram is the connectionless (UDP) transport state machine (§4.5).
// It is stateless apart from the serial counter; dialing "udp" keeps the
// socket "connected" to one peer so the kernel discards datagrams from any
// other source before they ever reach Read (resolving the §9 open question
// about wrong-source datagrams without spending retry budget on them).
type Datagram struct {
	mu      sync.Mutex
	conn    *net.UDPConn
	timeout time.Duration
	serial  uint16
	retry   int
}

// NewDatagram constructs an unconnected datagram transport with the default retry bound.
func NewDatagram() *Datagram { return &Datagram{retry: DefaultRetry} }

func (d *Datagram) Connect(ctx context.Context, endpoint string, timeout time.Duration, retry int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	addr, err := ResolveEndpoint(endpoint)
	if err != nil {
		metrics.IncError(mapErrToMetric(err))
		return err
	}
	r, err := checkRetry(retry)
	if err != nil {
		metrics.IncError(mapErrToMetric(err))
		return err
	}
	dialer := net.Dialer{Timeout: timeout}
	c, err := dialer.DialContext(ctx, "udp", addr)
	if err != nil {
		wrap := fmt.Errorf("%w: %v", ErrConnect, err)
		metrics.IncError(mapErrToMetric(wrap))
		return wrap
	}

	d.conn = c.(*net.UDPConn)
	d.timeout = timeout
	d.retry = r
	d.serial = 1 // initialized at connect, not left unset until disconnect (§9 open question)
	metrics.SetConnected("udp", true)
	logging.Component("datagram").Info("datagram_connected", "addr", addr, "retry", r)
	return nil
}

func (d *Datagram) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	metrics.SetConnected("udp", false)
	return err
}

func (d *Datagram) SetTimeout(dur time.Duration) {
	d.mu.Lock()
	d.timeout = dur
	d.mu.Unlock()
}

func (d *Datagram) GetTimeout() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timeout
}

// SetCompression always fails when enabled: compression is not supported
// on the datagram transport (§4.5).
func (d *Datagram) SetCompression(enabled bool, _ int) error {
	if !enabled {
		return nil
	}
	metrics.IncError(metrics.ErrCompressionNotSP)
	return fmt.Errorf("%w: compression is not supported on the datagram transport", ErrConfiguration)
}

// Request implements the bounded retry loop of §4.5: retry_count runs
// 0..d.retry inclusive (d.retry+1 attempts total), each attempt serializing
// with the current attempt number as the wire retry-count field.
func (d *Datagram) Request(funcID int32, args []variant.Value) (hresult.Code, variant.Value, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn == nil {
		err := fmt.Errorf("%w: datagram transport has no active connection", ErrNotConnected)
		metrics.IncError(mapErrToMetric(err))
		return 0, variant.Empty(), err
	}

	metrics.IncRequest("udp")
	pace := backoff.NewConstantBackOff(interRetryDelay)

	for attempt := 0; attempt <= d.retry; attempt++ {
		serial, next := nextSerial(d.serial)
		d.serial = next

		wireBytes, err := packet.Serialize(serial, uint16(attempt), funcID, args, packet.Options{Stream: false})
		if err != nil {
			metrics.IncError(mapErrToMetric(err))
			return 0, variant.Empty(), err // protocol error, never retried (§4.5 step 3)
		}
		if len(wireBytes) > MaxPacketSize {
			metrics.IncError(mapErrToMetric(fmt.Errorf("%w", ErrOversize)))
			err := hresult.New(hresult.EInvalidPacket, fmt.Sprintf(
				"serialized packet is %d bytes, exceeds the %d-byte datagram cap", len(wireBytes), MaxPacketSize))
			return hresult.EInvalidPacket, variant.Empty(), err // before any sendto (§8 scenario 6)
		}

		if d.timeout > 0 {
			_ = d.conn.SetDeadline(time.Now().Add(d.timeout))
		}

		if _, err := d.conn.Write(wireBytes); err != nil {
			if attempt == d.retry {
				return d.exhausted()
			}
			metrics.IncRetry("udp")
			time.Sleep(pace.NextBackOff())
			continue
		}
		metrics.AddBytesSent("udp", len(wireBytes))

		pkt, protoErr, ioErr := d.receiveOne(serial)
		if protoErr != nil {
			metrics.IncError(mapErrToMetric(protoErr))
			return 0, variant.Empty(), protoErr // propagates immediately, never retried (§4.5 step 3)
		}
		if ioErr != nil {
			if attempt == d.retry {
				return d.exhausted()
			}
			metrics.IncRetry("udp")
			time.Sleep(pace.NextBackOff())
			continue
		}

		if pkt.HR.Failed() {
			metrics.IncServerError("udp")
		}
		return pkt.HR, pkt.Result(), nil
	}
	return d.exhausted()
}

// receiveOne reads datagrams until one matches serial with a final
// (non-S_EXECUTING) status, an I/O error occurs (timeout, etc, returned via
// ioErr for the retry loop to handle), or a malformed datagram is found
// (returned via protoErr, which the caller must not retry).
func (d *Datagram) receiveOne(serial uint16) (pkt packet.Packet, protoErr, ioErr error) {
	buf := make([]byte, 65535)
	for {
		n, err := d.conn.Read(buf)
		if err != nil {
			return packet.Packet{}, nil, err
		}
		metrics.AddBytesRecv("udp", n)

		p, derr := packet.Deserialize(buf[:n], false)
		if derr != nil {
			return packet.Packet{}, derr, nil
		}
		if p.Serial != serial {
			continue
		}
		if p.HR == hresult.SExecuting {
			metrics.IncExecutingContinuation("udp")
			continue
		}
		return p, nil, nil
	}
}

func (d *Datagram) exhausted() (hresult.Code, variant.Value, error) {
	err := hresult.New(hresult.EFail, "The number of retries has been exceeded.")
	metrics.IncError(mapErrToMetric(fmt.Errorf("%w", ErrRetryExhausted)))
	return hresult.EFail, variant.Empty(), err
}
