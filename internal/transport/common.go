// Package transport implements the two b-CAP transport state machines:
// Stream (connection-oriented, TCP) and Datagram (connectionless, UDP).
// Both share serial-number bookkeeping and endpoint parsing (§4.4, §4.5).
package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/keioku/bcap-go/internal/hresult"
	"github.com/keioku/bcap-go/internal/variant"
)

// DefaultPort is used when an endpoint carries no explicit port (§6).
const DefaultPort = 5007

// MinRetry and MaxRetry bound the datagram retry budget (§6).
const (
	MinRetry     = 1
	MaxRetry     = 7
	DefaultRetry = 1
)

// Transport is the common surface both transport state machines present to
// the client facade (§4.4, §4.5, §5).
type Transport interface {
	Connect(ctx context.Context, endpoint string, timeout time.Duration, retry int) error
	Disconnect() error
	SetTimeout(d time.Duration)
	GetTimeout() time.Duration
	SetCompression(enabled bool, level int) error
	Request(funcID int32, args []variant.Value) (hresult.Code, variant.Value, error)
}

// ResolveEndpoint parses "host[:port]" into a dialable "host:port" address,
// defaulting the port to DefaultPort when omitted (§6 endpoint syntax).
func ResolveEndpoint(endpoint string) (string, error) {
	if endpoint == "" {
		return "", fmt.Errorf("%w: empty endpoint", ErrConfiguration)
	}
	host, port, err := net.SplitHostPort(endpoint)
	if err != nil {
		var addrErr *net.AddrError
		if !asAddrError(err, &addrErr) || !strings.Contains(addrErr.Err, "missing port") {
			return "", fmt.Errorf("%w: invalid endpoint %q: %v", ErrConfiguration, endpoint, err)
		}
		host = endpoint
		port = strconv.Itoa(DefaultPort)
	}
	if port == "" {
		port = strconv.Itoa(DefaultPort)
	}
	return net.JoinHostPort(host, port), nil
}

func asAddrError(err error, target **net.AddrError) bool {
	ae, ok := err.(*net.AddrError)
	if !ok {
		return false
	}
	*target = ae
	return true
}

// checkRetry validates a datagram retry bound (§6, §7).
func checkRetry(retry int) (int, error) {
	if retry == 0 {
		retry = DefaultRetry
	}
	if retry < MinRetry || retry > MaxRetry {
		return 0, fmt.Errorf("%w: retry %d out of range [%d,%d]", ErrConfiguration, retry, MinRetry, MaxRetry)
	}
	return retry, nil
}

// checkCompressionLevel validates a zlib level (§6).
func checkCompressionLevel(level int) error {
	if level < -1 || level > 9 {
		return fmt.Errorf("%w: compression level %d out of range [-1,9]", ErrConfiguration, level)
	}
	return nil
}

// nextSerial returns cur and the next value, wrapping 0xFFFF to 1, never 0
// (§3 "Serial number").
func nextSerial(cur uint16) (this, next uint16) {
	next = cur + 1
	if next == 0 {
		next = 1
	}
	return cur, next
}

var (
	_ Transport = (*Stream)(nil)
	_ Transport = (*Datagram)(nil)
)
