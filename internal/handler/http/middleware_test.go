package http

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
	"github.com/MKhiriev/icrc7-dapp/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer", header: "Bearer my-jwt", wantToken: "my-jwt"},
		{name: "lowercase scheme", header: "bearer my-jwt", wantToken: "my-jwt"},
		{name: "missing token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer  ", wantErr: ErrEmptyToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parseErr    error
		expectParse bool
		wantStatus  int
		wantCaller  models.Principal
	}{
		{name: "no header is anonymous", wantStatus: http.StatusOK, wantCaller: models.AnonymousPrincipal},
		{name: "valid delegation", header: "Bearer tok", expectParse: true, wantStatus: http.StatusOK, wantCaller: alice},
		{name: "malformed header", header: "tok", wantStatus: http.StatusUnauthorized},
		{
			name:        "expired delegation",
			header:      "Bearer tok",
			expectParse: true,
			parseErr:    service.ErrTokenIsExpiredOrInvalid,
			wantStatus:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t, config.Server{})
			if tt.expectParse {
				th.identity.EXPECT().ParseToken(gomock.Any(), "tok").Return(alice, tt.parseErr)
			}

			var caller models.Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				caller = utils.CallerFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			th.h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantCaller, caller)
			}
			if tt.parseErr != nil {
				assert.Contains(t, rec.Body.String(), app.MsgTokenIsExpiredOrInvalid)
			}
		})
	}
}

func TestRateLimit_RefusesOverBurst(t *testing.T) {
	recorder := &countingRecorder{}
	th := newTestHandler(t, config.Server{RateLimit: 0.5, RateBurst: 1}, WithMetrics(recorder, nil))
	now := time.Unix(1_700_000_000, 0)
	th.h.limiter.now = func() time.Time { return now }

	first := th.serve(envelopeRequest(t, codec.NewCBOR(), queryEnvelope(models.AnonymousPrincipal)))
	second := th.serve(envelopeRequest(t, codec.NewCBOR(), queryEnvelope(models.AnonymousPrincipal)))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "2", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), app.MsgTooManyRequests)
	assert.Equal(t, 1, recorder.rateLimited)
	assert.Len(t, th.dispatcher.calls, 1)
}

func TestRateLimit_BucketsPerCaller(t *testing.T) {
	th := newTestHandler(t, config.Server{RateLimit: 1, RateBurst: 1})
	th.identity.EXPECT().ParseToken(gomock.Any(), "alice").Return(alice, nil)

	anonymous := th.serve(envelopeRequest(t, codec.NewCBOR(), queryEnvelope(models.AnonymousPrincipal)))

	req := envelopeRequest(t, codec.NewCBOR(), queryEnvelope(alice))
	req.Header.Set("Authorization", "Bearer alice")
	delegated := th.serve(req)

	assert.Equal(t, http.StatusOK, anonymous.Code)
	assert.Equal(t, http.StatusOK, delegated.Code)
	assert.Equal(t, 2, th.h.limiter.size())
}

func TestRateLimiter_SweepsIdleCallers(t *testing.T) {
	rl := newRateLimiter(1, 0)
	now := time.Unix(1_700_000_000, 0)
	rl.now = func() time.Time { return now }

	require.True(t, rl.allow("a"))
	require.True(t, rl.allow("b"))
	require.Equal(t, 2, rl.size())

	now = now.Add(limiterIdleTTL + time.Second)
	require.True(t, rl.allow("b"))

	assert.Equal(t, 1, rl.size())
	assert.Equal(t, 1, rl.burst)
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(append([]byte("echo: "), body...))
	})

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("payload"))
		req.Header.Set("Accept-Encoding", "deflate, gzip")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		plain, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, "echo: payload", string(plain))
	})

	t.Run("inflates gzip requests", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, _ = zw.Write([]byte("payload"))
		require.NoError(t, zw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "echo: payload", rec.Body.String())
	})

	t.Run("rejects broken gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckHTTPMethod(t *testing.T) {
	th := newTestHandler(t, config.Server{})

	wrongMethod := th.serve(httptest.NewRequest(http.MethodGet, "/api/v3/canister/"+factoryID.String()+"/call", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, wrongMethod.Code)
	assert.Equal(t, http.MethodPost, wrongMethod.Header().Get("Allow"))

	status := th.serve(httptest.NewRequest(http.MethodDelete, statusRoute, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, status.Code)
	assert.Equal(t, http.MethodGet, status.Header().Get("Allow"))

	unknown := th.serve(httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
	assert.Equal(t, http.StatusNotFound, unknown.Code)
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	t.Run("reuses the client trace id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-1")
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"trace-1"`)
	})

	t.Run("generates one when missing or oversized", func(t *testing.T) {
		for _, given := range []string{"", strings.Repeat("x", maxTraceIDLength+1)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if given != "" {
				req.Header.Set(traceIDHeader, given)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
			assert.NoError(t, err)
		}
	})
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v2/status", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"status":502`)
	assert.Contains(t, out, `"uri":"/api/v2/status"`)
	assert.Contains(t, out, `"size":5`)
}

func TestResponseWriter_ForwardsHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("ok"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, w.size)
}

var errBoom = errors.New("boom")

func TestWriteError_HidesServerFailures(t *testing.T) {
	rec := httptest.NewRecorder()

	status := writeError(rec, errBoom)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotContains(t, rec.Body.String(), "boom")
}
