package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keioku/bcap-go/internal/hresult"
	"github.com/keioku/bcap-go/internal/ops"
	"github.com/keioku/bcap-go/internal/variant"
)

// fakeTransport stands in for internal/transport.Transport so the facade's
// should_return_hr policy and wiring can be tested without a real socket.
type fakeTransport struct {
	connectErr  error
	requestHR   hresult.Code
	requestVal  variant.Value
	requestErr  error
	lastFuncID  int32
	lastArgs    []variant.Value
	connected   bool
	disconnects int
	timeout     time.Duration
	compressErr error
}

func (f *fakeTransport) Connect(ctx context.Context, endpoint string, timeout time.Duration, retry int) error {
	if f.connectErr != nil {
		return f.connectErr
	}
	f.connected = true
	return nil
}
func (f *fakeTransport) Disconnect() error { f.disconnects++; return nil }
func (f *fakeTransport) SetTimeout(d time.Duration) { f.timeout = d }
func (f *fakeTransport) GetTimeout() time.Duration  { return f.timeout }
func (f *fakeTransport) SetCompression(enabled bool, level int) error { return f.compressErr }
func (f *fakeTransport) Request(funcID int32, args []variant.Value) (hresult.Code, variant.Value, error) {
	f.lastFuncID = funcID
	f.lastArgs = args
	return f.requestHR, f.requestVal, f.requestErr
}

func newTestClient(t *testing.T, ft *fakeTransport, opts ...Option) *Client {
	t.Helper()
	c := &Client{transport: ft}
	for _, o := range opts {
		o(c)
	}
	return c
}

func TestNew_SelectsTransportByName(t *testing.T) {
	if c, err := New("tcp"); err != nil || c == nil {
		t.Fatalf("New(tcp): %v", err)
	}
	if c, err := New("UDP"); err != nil || c == nil {
		t.Fatalf("New(UDP): %v", err)
	}
	if _, err := New("serial"); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("New(serial) err = %v, want ErrNotImplemented", err)
	}
}

func TestCall_SucceedsWithoutReturnHR(t *testing.T) {
	ft := &fakeTransport{requestHR: hresult.SOK, requestVal: variant.I4(42)}
	c := newTestClient(t, ft)

	got, err := c.Call(ops.ControllerGetTag, int32(1), "tag")
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	val, ok := got.(variant.Value)
	if !ok || val.Int() != 42 {
		t.Fatalf("got %#v, want variant.Value carrying 42", got)
	}
	if ft.lastFuncID != ops.ControllerGetTag {
		t.Fatalf("lastFuncID = %d, want %d", ft.lastFuncID, ops.ControllerGetTag)
	}
}

func TestCall_FailedHRESULTBecomesError(t *testing.T) {
	ft := &fakeTransport{requestHR: hresult.EFail, requestVal: variant.Empty()}
	c := newTestClient(t, ft)

	_, err := c.Call(ops.ControllerGetTag, int32(1), "tag")
	if err == nil {
		t.Fatalf("expected an error for a failed HRESULT")
	}
	var herr *hresult.Error
	if !errors.As(err, &herr) || herr.HR != hresult.EFail {
		t.Fatalf("err = %v, want hresult.Error{HR: EFail}", err)
	}
}

func TestCall_ReturnHRPolicyAlwaysReturnsResult(t *testing.T) {
	ft := &fakeTransport{requestHR: hresult.EFail, requestVal: variant.Empty()}
	c := newTestClient(t, ft, WithReturnHR(true))

	got, err := c.Call(ops.ControllerGetTag, int32(1), "tag")
	if err != nil {
		t.Fatalf("Call with WithReturnHR(true): %v", err)
	}
	res, ok := got.(Result)
	if !ok || res.HR != hresult.EFail {
		t.Fatalf("got %#v, want Result{HR: EFail}", got)
	}
}

func TestCall_TransportErrorAlwaysPropagates(t *testing.T) {
	ft := &fakeTransport{requestErr: errors.New("boom")}
	c := newTestClient(t, ft, WithReturnHR(true))

	_, err := c.Call(ops.ControllerGetTag, int32(1))
	if err == nil {
		t.Fatalf("expected transport error to propagate even with WithReturnHR(true)")
	}
}

func TestDisconnect_SwallowsServiceStopError(t *testing.T) {
	ft := &fakeTransport{requestErr: errors.New("service_stop failed")}
	c := newTestClient(t, ft)

	if err := c.Disconnect(); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if ft.lastFuncID != ops.ServiceStop {
		t.Fatalf("lastFuncID = %d, want ServiceStop", ft.lastFuncID)
	}
	if ft.disconnects != 1 {
		t.Fatalf("disconnects = %d, want 1", ft.disconnects)
	}
}

func TestGeneratedWrapper_ForwardsToCall(t *testing.T) {
	ft := &fakeTransport{requestHR: hresult.SOK, requestVal: variant.BSTR("ok")}
	c := newTestClient(t, ft)

	if _, err := c.ControllerConnect("VRC9", "CaoProv.DENSO.VRC9", "localhost", ""); err != nil {
		t.Fatalf("ControllerConnect: %v", err)
	}
	if ft.lastFuncID != ops.ControllerConnect {
		t.Fatalf("lastFuncID = %d, want %d", ft.lastFuncID, ops.ControllerConnect)
	}
	if len(ft.lastArgs) != 4 {
		t.Fatalf("lastArgs len = %d, want 4", len(ft.lastArgs))
	}
}

func TestLookup_ResolvesKnownOperation(t *testing.T) {
	op, ok := Lookup("robot_move")
	if !ok {
		t.Fatalf("Lookup(robot_move) not found")
	}
	if op.Name != "robot_move" {
		t.Fatalf("op.Name = %q", op.Name)
	}
}

func TestLookup_UnknownOperation(t *testing.T) {
	if _, ok := Lookup("not_a_real_operation"); ok {
		t.Fatalf("expected unknown operation lookup to fail")
	}
}
