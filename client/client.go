// Package client is the single entry point of this library: it selects a
// transport, dispatches function calls, and translates b-CAP status codes
// into either a value-or-error or a (status, value) pair (§4.6).
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/keioku/bcap-go/internal/hresult"
	"github.com/keioku/bcap-go/internal/logging"
	"github.com/keioku/bcap-go/internal/ops"
	"github.com/keioku/bcap-go/internal/transport"
	"github.com/keioku/bcap-go/internal/variant"
)

// ErrNotImplemented is returned by New for any transport selector other
// than "tcp" or "udp" (§4.6).
var ErrNotImplemented = errors.New("bcap: transport not implemented")

// Result is the (hresult, value) pair returned when should_return_hr is
// enabled; callers opting into it get the raw status alongside the value
// instead of an error on a negative HRESULT (§4.6 HRESULT translation policy).
type Result struct {
	HR    hresult.Code
	Value variant.Value
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithReturnHR selects the should_return_hr policy: when true, Call always
// returns a Result instead of raising on a negative HRESULT (§4.6).
func WithReturnHR(b bool) Option {
	return func(c *Client) { c.shouldReturnHR = b }
}

// Client is the facade described in §4.6: one active transport, one
// HRESULT translation policy.
type Client struct {
	transport      transport.Transport
	shouldReturnHR bool
}

// New selects a transport by name ("tcp" or "udp", case-insensitive).
func New(transportName string, opts ...Option) (*Client, error) {
	var t transport.Transport
	switch strings.ToLower(transportName) {
	case "tcp":
		t = transport.NewStream()
	case "udp":
		t = transport.NewDatagram()
	default:
		return nil, fmt.Errorf("%w: %q", ErrNotImplemented, transportName)
	}
	c := &Client{transport: t}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Connect opens the underlying transport. endpoint is "host[:port]";
// default port 5007. retry is meaningful only for the datagram transport;
// 0 resolves to the default of 1 (§6).
func (c *Client) Connect(ctx context.Context, endpoint string, timeout time.Duration, retry int) error {
	return c.transport.Connect(ctx, endpoint, timeout, retry)
}

// Disconnect best-effort issues service_stop (function ID 2), swallowing
// any error from it, then closes the transport (§4.6).
func (c *Client) Disconnect() error {
	if _, _, err := c.transport.Request(ops.ServiceStop, nil); err != nil {
		logging.Component("client").Debug("service_stop_failed_on_disconnect", "error", err)
	}
	return c.transport.Disconnect()
}

func (c *Client) SetTimeout(d time.Duration) { c.transport.SetTimeout(d) }
func (c *Client) GetTimeout() time.Duration  { return c.transport.GetTimeout() }

// SetCompression is forwarded to the active transport; the datagram
// transport always rejects enable=true (§4.5).
func (c *Client) SetCompression(enable bool, level int) error {
	return c.transport.SetCompression(enable, level)
}

// Call issues one request and applies the should_return_hr policy. args are
// sniffed into VARIANT values via variant.ToArgs (§4.2 Design Notes).
// Local transport/protocol failures always return a non-nil error,
// regardless of should_return_hr (§4.6, §7).
func (c *Client) Call(funcID int32, args ...any) (any, error) {
	vargs, err := variant.ToArgs(args...)
	if err != nil {
		return nil, err
	}
	hr, val, err := c.transport.Request(funcID, vargs)
	if err != nil {
		return nil, err
	}
	if c.shouldReturnHR {
		return Result{HR: hr, Value: val}, nil
	}
	if hr.Failed() {
		return nil, hresult.New(hr, "")
	}
	return val, nil
}

// Lookup exposes the operation catalogue for callers that want a function
// ID by name rather than through a generated wrapper (§4.7).
func Lookup(name string) (ops.Op, bool) { return ops.Lookup(name) }
