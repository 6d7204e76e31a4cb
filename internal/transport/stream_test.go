package transport

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/keioku/bcap-go/internal/hresult"
	"github.com/keioku/bcap-go/internal/packet"
	"github.com/keioku/bcap-go/internal/variant"
)

func recvRequest(t *testing.T, conn net.Conn) packet.Packet {
	t.Helper()
	buf := make([]byte, 4096)
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("server read: %v", err)
	}
	pkt, err := packet.Deserialize(buf[:n], true)
	if err != nil {
		t.Fatalf("server deserialize: %v", err)
	}
	return pkt
}

func sendResponse(t *testing.T, conn net.Conn, serial uint16, hr hresult.Code, args []variant.Value) {
	t.Helper()
	raw, err := packet.Serialize(serial, protocolVersion, int32(hr), args, packet.Options{Stream: true})
	if err != nil {
		t.Fatalf("server serialize: %v", err)
	}
	if _, err := conn.Write(raw); err != nil {
		t.Fatalf("server write: %v", err)
	}
}

func TestStream_RequestResponseRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	s := &Stream{conn: client, serial: 1}

	done := make(chan struct{})
	go func() {
		defer close(done)
		req := recvRequest(t, server)
		sendResponse(t, server, req.Serial, hresult.SOK, []variant.Value{variant.I4(99)})
	}()

	hr, val, err := s.Request(3, []variant.Value{variant.BSTR("b-CAP.rc8")})
	<-done
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if hr != hresult.SOK {
		t.Fatalf("hr = %v, want SOK", hr)
	}
	if val.Int() != 99 {
		t.Fatalf("val = %v, want 99", val.Int())
	}
}

func TestStream_ExecutingContinuationConsumed(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	s := &Stream{conn: client, serial: 1}

	done := make(chan struct{})
	go func() {
		defer close(done)
		req := recvRequest(t, server)
		sendResponse(t, server, req.Serial, hresult.SExecuting, nil)
		sendResponse(t, server, req.Serial, hresult.SOK, []variant.Value{variant.I4(1)})
	}()

	hr, val, err := s.Request(1, nil)
	<-done
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if hr != hresult.SOK || val.Int() != 1 {
		t.Fatalf("got hr=%v val=%v, want SOK/1", hr, val)
	}
}

func TestStream_StaleSerialIgnored(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	s := &Stream{conn: client, serial: 1}

	done := make(chan struct{})
	go func() {
		defer close(done)
		req := recvRequest(t, server)
		sendResponse(t, server, req.Serial+37, hresult.SOK, []variant.Value{variant.I4(0)}) // stale/unrelated serial
		sendResponse(t, server, req.Serial, hresult.SOK, []variant.Value{variant.I4(7)})
	}()

	hr, val, err := s.Request(1, nil)
	<-done
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if hr != hresult.SOK || val.Int() != 7 {
		t.Fatalf("got hr=%v val=%v, want SOK/7", hr, val)
	}
}

func TestStream_ResyncsPastGarbagePrefix(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	s := &Stream{conn: client, serial: 1}

	done := make(chan struct{})
	go func() {
		defer close(done)
		req := recvRequest(t, server)
		raw, err := packet.Serialize(req.Serial, protocolVersion, int32(hresult.SOK), nil, packet.Options{Stream: true})
		if err != nil {
			t.Fatalf("serialize: %v", err)
		}
		// No prefix byte equals SOH (0x01): a stray SOH would be taken as a
		// packet start and its following bytes as the declared length.
		garbage := append([]byte{0xFF, 0xFF, 0x00, 0x7F}, raw...)
		if _, err := server.Write(garbage); err != nil {
			t.Fatalf("write: %v", err)
		}
	}()

	hr, _, err := s.Request(1, nil)
	<-done
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if hr != hresult.SOK {
		t.Fatalf("hr = %v, want SOK", hr)
	}
}

func TestStream_Request_NotConnected(t *testing.T) {
	s := NewStream()
	_, _, err := s.Request(1, nil)
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("err = %v, want ErrNotConnected", err)
	}
}

func TestStream_SetTimeoutBeforeConnectIsHarmless(t *testing.T) {
	s := NewStream()
	s.SetTimeout(5 * time.Second)
	if got := s.GetTimeout(); got != 5*time.Second {
		t.Fatalf("GetTimeout = %v, want 5s", got)
	}
}

func TestStream_SetCompression_RejectsBadLevel(t *testing.T) {
	s := NewStream()
	if err := s.SetCompression(true, 99); err == nil {
		t.Fatalf("expected error for out-of-range compression level")
	}
	if err := s.SetCompression(true, 6); err != nil {
		t.Fatalf("SetCompression(true, 6): %v", err)
	}
}

func TestStream_ConnectRejectsUnresolvableEndpoint(t *testing.T) {
	s := NewStream()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Connect(ctx, "", time.Second, 0); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
}
