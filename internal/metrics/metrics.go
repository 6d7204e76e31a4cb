// Package metrics exposes Prometheus counters/gauges for the b-CAP client
// alongside cheap local mirrors so callers can introspect activity without
// standing up a scrape target.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus series.
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bcap_client_requests_total",
		Help: "Total b-CAP requests issued, by transport.",
	}, []string{"transport"})
	RetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bcap_client_retries_total",
		Help: "Total datagram-transport retransmissions.",
	}, []string{"transport"})
	ExecutingContinuationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bcap_client_executing_continuations_total",
		Help: "Total S_EXECUTING interim responses consumed while awaiting a final reply.",
	}, []string{"transport"})
	ServerErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bcap_client_server_errors_total",
		Help: "Total requests that completed with a negative HRESULT.",
	}, []string{"transport"})
	Errors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bcap_client_errors_total",
		Help: "Local (transport/protocol) error counters by kind.",
	}, []string{"where"})
	BytesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bcap_client_bytes_sent_total",
		Help: "Total bytes written to the wire, by transport.",
	}, []string{"transport"})
	BytesRecv = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bcap_client_bytes_received_total",
		Help: "Total bytes read from the wire, by transport.",
	}, []string{"transport"})
	Connected = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bcap_client_connected",
		Help: "1 if the transport is currently connected, else 0.",
	}, []string{"transport"})
)

// Error label constants (stable label values to bound cardinality).
const (
	ErrMalformedPacket  = "malformed_packet"
	ErrUnsupportedType  = "unsupported_variant_type"
	ErrSocketIO         = "socket_io"
	ErrTimeout          = "timeout"
	ErrRetryExhausted   = "retry_exhausted"
	ErrPacketOversize   = "packet_oversize"
	ErrConfiguration    = "configuration"
	ErrCompressionNotSP = "compression_not_supported"
)

// Local mirrored counters, read without touching the Prometheus registry.
var (
	localRequests    uint64
	localRetries     uint64
	localExecContinu uint64
	localServerErrs  uint64
	localErrors      uint64
	localBytesSent   uint64
	localBytesRecv   uint64
)

// Snapshot is a cheap copy of the local counters.
type Snapshot struct {
	Requests           uint64
	Retries            uint64
	ExecutingContinued uint64
	ServerErrors       uint64
	Errors             uint64
	BytesSent          uint64
	BytesReceived      uint64
}

// Snap returns the current local counter values.
func Snap() Snapshot {
	return Snapshot{
		Requests:           atomic.LoadUint64(&localRequests),
		Retries:            atomic.LoadUint64(&localRetries),
		ExecutingContinued: atomic.LoadUint64(&localExecContinu),
		ServerErrors:       atomic.LoadUint64(&localServerErrs),
		Errors:             atomic.LoadUint64(&localErrors),
		BytesSent:          atomic.LoadUint64(&localBytesSent),
		BytesReceived:      atomic.LoadUint64(&localBytesRecv),
	}
}

// IncRequest records one issued request for the given transport ("tcp"/"udp").
func IncRequest(transport string) {
	RequestsTotal.WithLabelValues(transport).Inc()
	atomic.AddUint64(&localRequests, 1)
}

// IncRetry records one datagram retransmission.
func IncRetry(transport string) {
	RetriesTotal.WithLabelValues(transport).Inc()
	atomic.AddUint64(&localRetries, 1)
}

// IncExecutingContinuation records one consumed S_EXECUTING interim reply.
func IncExecutingContinuation(transport string) {
	ExecutingContinuationsTotal.WithLabelValues(transport).Inc()
	atomic.AddUint64(&localExecContinu, 1)
}

// IncServerError records one negative-HRESULT response.
func IncServerError(transport string) {
	ServerErrorsTotal.WithLabelValues(transport).Inc()
	atomic.AddUint64(&localServerErrs, 1)
}

// IncError records one local error by kind.
func IncError(where string) {
	Errors.WithLabelValues(where).Inc()
	atomic.AddUint64(&localErrors, 1)
}

// AddBytesSent/AddBytesRecv track raw wire traffic.
func AddBytesSent(transport string, n int) {
	BytesSent.WithLabelValues(transport).Add(float64(n))
	atomic.AddUint64(&localBytesSent, uint64(n))
}

func AddBytesRecv(transport string, n int) {
	BytesRecv.WithLabelValues(transport).Add(float64(n))
	atomic.AddUint64(&localBytesRecv, uint64(n))
}

// SetConnected updates the connection gauge for a transport.
func SetConnected(transport string, connected bool) {
	v := 0.0
	if connected {
		v = 1.0
	}
	Connected.WithLabelValues(transport).Set(v)
}

// init pre-registers bounded label series so the first real error/request
// does not pay first-use registration cost on the hot path.
func init() {
	for _, t := range []string{"tcp", "udp"} {
		RequestsTotal.WithLabelValues(t).Add(0)
		RetriesTotal.WithLabelValues(t).Add(0)
		ExecutingContinuationsTotal.WithLabelValues(t).Add(0)
		ServerErrorsTotal.WithLabelValues(t).Add(0)
		BytesSent.WithLabelValues(t).Add(0)
		BytesRecv.WithLabelValues(t).Add(0)
		Connected.WithLabelValues(t).Set(0)
	}
	for _, lbl := range []string{
		ErrMalformedPacket, ErrUnsupportedType, ErrSocketIO, ErrTimeout,
		ErrRetryExhausted, ErrPacketOversize, ErrConfiguration, ErrCompressionNotSP,
	} {
		Errors.WithLabelValues(lbl).Add(0)
	}
}
