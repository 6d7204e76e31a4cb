package transport

import (
	"errors"

	"github.com/keioku/bcap-go/internal/metrics"
)

// Sentinel errors used for wrapping so callers can classify via errors.Is.
var (
	ErrConfiguration  = errors.New("configuration")
	ErrConnect        = errors.New("connect")
	ErrSend           = errors.New("send")
	ErrRecv           = errors.New("recv")
	ErrRetryExhausted = errors.New("retry_exhausted")
	ErrOversize       = errors.New("packet_oversize")
	ErrNotConnected   = errors.New("not_connected")
)

// mapErrToMetric maps wrapped sentinel errors to metrics labels.
func mapErrToMetric(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return metrics.ErrConfiguration
	case errors.Is(err, ErrRetryExhausted):
		return metrics.ErrRetryExhausted
	case errors.Is(err, ErrOversize):
		return metrics.ErrPacketOversize
	case errors.Is(err, ErrConnect), errors.Is(err, ErrSend), errors.Is(err, ErrRecv), errors.Is(err, ErrNotConnected):
		return metrics.ErrSocketIO
	default:
		return "other"
	}
}
