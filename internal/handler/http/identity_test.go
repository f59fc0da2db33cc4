package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/metrics"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

func TestStatus(t *testing.T) {
	th := newTestHandler(t, config.Server{})
	th.appInfo.EXPECT().Status(gomock.Any()).Return(models.ReplicaStatus{
		ReplicaHealthStatus: service.ReplicaHealthy,
		ImplVersion:         "1.2.3",
		Revision:            config.RevisionV2,
	})

	rec := th.serve(httptest.NewRequest(http.MethodGet, statusRoute, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.ReplicaStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, service.ReplicaHealthy, got.ReplicaHealthStatus)
	assert.Equal(t, config.RevisionV2, got.Revision)
}

func TestDelegate(t *testing.T) {
	request := models.DelegationRequest{PublicKey: []byte("key"), Timestamp: 42, Signature: []byte("sig")}

	tests := []struct {
		name       string
		body       string
		err        error
		expect     bool
		wantStatus int
		wantBody   string
	}{
		{name: "issued", expect: true, wantStatus: http.StatusOK},
		{name: "invalid json", body: "{", wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{
			name:       "bad signature",
			expect:     true,
			err:        fmt.Errorf("%w: signature mismatch", service.ErrInvalidDelegation),
			wantStatus: http.StatusBadRequest,
			wantBody:   service.ErrInvalidDelegation.Error(),
		},
		{name: "stale challenge", expect: true, err: service.ErrDelegationTooOld, wantStatus: http.StatusUnauthorized},
		{
			name:       "signing failed",
			expect:     true,
			err:        fmt.Errorf("%w: hmac key", service.ErrTokenCreationFailed),
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t, config.Server{})
			expiration := time.Unix(1_700_000_000, 0).UTC()
			if tt.expect {
				th.identity.EXPECT().Delegate(gomock.Any(), request).Return(models.Delegation{
					Token:      "signed.jwt",
					Principal:  alice,
					Expiration: expiration,
				}, tt.err)
			}

			body := tt.body
			if body == "" {
				raw, err := json.Marshal(request)
				require.NoError(t, err)
				body = string(raw)
			}
			rec := th.serve(httptest.NewRequest(http.MethodPost, delegationRoute, strings.NewReader(body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusOK {
				var got models.Delegation
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, "signed.jwt", got.Token)
				assert.Equal(t, alice, got.Principal)
				assert.True(t, expiration.Equal(got.Expiration))
			}
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	collector.RecordRateLimited()

	th := newTestHandler(t, config.Server{}, WithMetrics(collector, reg))

	rec := th.serve(httptest.NewRequest(http.MethodGet, metricsRoute, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "icrc7_replica_rate_limited_total 1")
}

func TestMetricsRoute_AbsentWithoutGatherer(t *testing.T) {
	th := newTestHandler(t, config.Server{})

	rec := th.serve(httptest.NewRequest(http.MethodGet, metricsRoute, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
