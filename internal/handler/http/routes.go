package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/icrc7-dapp/internal/metrics"
)

const (
	queryRoute      = "/api/v2/canister/{canisterID}/query"
	callRoute       = "/api/v3/canister/{canisterID}/call"
	statusRoute     = "/api/v2/status"
	delegationRoute = "/api/v2/identity/delegation"
	metricsRoute    = "/metrics"
)

// Init builds the router of the replica HTTP interface.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get(statusRoute, h.status)
		r.Post(delegationRoute, h.delegate)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.rateLimit)

			r.Post(queryRoute, h.query)
			r.Post(callRoute, h.call)
		})
	})

	// promhttp negotiates its own compression.
	if h.gatherer != nil {
		router.Method(http.MethodGet, metricsRoute, metrics.Handler(h.gatherer))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
