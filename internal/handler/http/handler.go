package http

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/metrics"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// Dispatcher executes a decoded call envelope on behalf of caller and
// returns the reply to encode with c.
type Dispatcher interface {
	Dispatch(ctx context.Context, c codec.Codec, requestType string, env models.CallEnvelope, caller models.Principal) models.CallReply
}

// Handler serves the replica HTTP interface.
type Handler struct {
	dispatcher Dispatcher
	services   *service.Services

	limiter  *rateLimiter
	recorder metrics.CallRecorder
	gatherer prometheus.Gatherer

	requestTimeout time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// Option customises a Handler.
type Option func(*Handler)

// WithMetrics records rate-limit rejections with recorder and exposes
// gatherer on /metrics.
func WithMetrics(recorder metrics.CallRecorder, gatherer prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.recorder = recorder
		h.gatherer = gatherer
	}
}

// NewHandler builds the HTTP handler. A positive cfg.RateLimit enables
// per-caller rate limiting of canister calls.
func NewHandler(dispatcher Dispatcher, services *service.Services, cfg config.Server, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		dispatcher: dispatcher,
		services:   services,

		requestTimeout: cfg.RequestTimeout,

		recorder: metrics.Nop(),
		now:      time.Now,
		logger:   logger,
	}
	if cfg.RateLimit > 0 {
		h.limiter = newRateLimiter(cfg.RateLimit, cfg.RateBurst)
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
