package httpauth

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gribouille/netrc"
	"github.com/prometheus/client_golang/prometheus"
)

// Transport is an http.RoundTripper that attaches Basic Auth credentials
// from a netrc store to outgoing requests. Requests that already carry an
// Authorization header, or whose host has no usable entry, pass through
// unmodified. The store is treated as read-only after construction.
type Transport struct {
	nrc        *netrc.Netrc
	base       http.RoundTripper
	logger     *slog.Logger
	metrics    *metrics
	requestID  bool
	noFallback bool
}

var _ http.RoundTripper = (*Transport)(nil)

// Option configures a Transport.
type Option func(*Transport)

// WithBase sets the underlying round tripper. Defaults to
// http.DefaultTransport.
func WithBase(rt http.RoundTripper) Option {
	return func(t *Transport) { t.base = rt }
}

// WithLogger enables debug-level logging of credential lookups.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transport) { t.logger = logger }
}

// WithMetrics registers lookup and authentication counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(t *Transport) { t.metrics = newMetrics(reg) }
}

// WithRequestID assigns a generated X-Request-ID header to requests that
// lack one, so authenticated requests can be correlated in backend logs.
func WithRequestID() Option {
	return func(t *Transport) { t.requestID = true }
}

// WithoutFallback disables the default-entry fallback: only an exact
// machine entry for the request host is used.
func WithoutFallback() Option {
	return func(t *Transport) { t.noFallback = true }
}

// NewTransport creates a Transport backed by the given store.
func NewTransport(nrc *netrc.Netrc, opts ...Option) *Transport {
	t := &Transport{
		nrc:  nrc,
		base: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Client returns an *http.Client whose transport injects credentials from
// the store.
func Client(nrc *netrc.Netrc, opts ...Option) *http.Client {
	return &http.Client{Transport: NewTransport(nrc, opts...)}
}

// RoundTrip implements http.RoundTripper. The incoming request is never
// modified; credentials are set on a clone.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	entry, result := t.lookup(req)
	if t.metrics != nil {
		t.metrics.lookups.WithLabelValues(result).Inc()
	}
	if entry == nil {
		return t.base.RoundTrip(req)
	}

	out := req.Clone(req.Context())
	out.SetBasicAuth(entry.Login, entry.Password)
	if t.requestID && out.Header.Get("X-Request-ID") == "" {
		out.Header.Set("X-Request-ID", uuid.NewString())
	}
	if t.metrics != nil {
		t.metrics.authenticated.Inc()
	}
	if t.logger != nil {
		t.logger.Debug("attached netrc credentials",
			slog.String("host", req.URL.Hostname()),
			slog.String("login", entry.Login),
			slog.String("match", result))
	}
	return t.base.RoundTrip(out)
}

// Lookup result labels.
const (
	matchExact   = "exact"
	matchDefault = "default"
	matchMiss    = "miss"
	matchSkipped = "skipped"
)

// lookup resolves the credential entry for req. Returns nil when the
// request should pass through untouched: no target host, an Authorization
// header already present, or no entry with credentials.
func (t *Transport) lookup(req *http.Request) (*netrc.Entry, string) {
	if req.URL == nil || req.URL.Host == "" {
		return nil, matchSkipped
	}
	if req.Header.Get("Authorization") != "" {
		return nil, matchSkipped
	}

	host := req.URL.Hostname()
	entry := t.nrc.Machine(host)
	result := matchExact
	if entry == nil && !t.noFallback {
		entry = t.nrc.Default()
		result = matchDefault
	}
	if entry == nil || (entry.Login == "" && entry.Password == "") {
		return nil, matchMiss
	}
	return entry, result
}
