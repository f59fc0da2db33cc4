// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

var testBackend = models.CanisterPrincipal(2)

// newTestAgent creates an agent pointed at the test server.
func newTestAgent(t *testing.T, serverURL string, c codec.Codec, opts ...AgentOption) Agent {
	t.Helper()
	a, err := NewHTTPAgent(config.ClientAdapter{ReplicaURL: serverURL, RequestTimeout: time.Second}, c, logger.Nop(), opts...)
	require.NoError(t, err)
	return a
}

// replicaStub decodes the envelope, hands it to handle and encodes the reply.
func replicaStub(t *testing.T, c codec.Codec, handle func(r *http.Request, env models.CallEnvelope) models.CallReply) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var env models.CallEnvelope
		require.NoError(t, c.Unmarshal(body, &env))

		payload, err := c.Marshal(handle(r, env))
		require.NoError(t, err)

		w.Header().Set("Content-Type", c.ContentType())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}))
}

func TestAgent_QueryForwardsArgumentsAndDecodesReply(t *testing.T) {
	for _, c := range []codec.Codec{codec.NewCBOR(), codec.NewJSON()} {
		t.Run(c.Name(), func(t *testing.T) {
			srv := replicaStub(t, c, func(r *http.Request, env models.CallEnvelope) models.CallReply {
				assert.Equal(t, "/api/v2/canister/"+testBackend.String()+"/query", r.URL.Path)
				assert.Equal(t, c.ContentType(), r.Header.Get("Content-Type"))
				assert.Empty(t, r.Header.Get("Authorization"))

				assert.Equal(t, models.RequestTypeQuery, env.RequestType)
				assert.Equal(t, "get_group_members", env.MethodName)
				assert.Equal(t, testBackend, env.CanisterID)
				assert.True(t, env.Sender.IsAnonymous())
				assert.Greater(t, env.IngressExpiry, uint64(time.Now().UnixNano()))

				var groupID string
				require.NoError(t, c.DecodeTuple(env.Arg, &groupID))
				assert.Equal(t, "g1", groupID)

				members := []models.Member{{Name: "alice", InternetIdentity: models.AnonymousPrincipal}}
				arg, err := c.EncodeTuple(members)
				require.NoError(t, err)
				return models.Replied(arg)
			})
			defer srv.Close()

			a := newTestAgent(t, srv.URL, c)

			var members []models.Member
			err := a.Query(context.Background(), testBackend, "get_group_members", []any{"g1"}, &members)
			require.NoError(t, err)
			require.Len(t, members, 1)
			assert.Equal(t, "alice", members[0].Name)
		})
	}
}

func TestAgent_CallAttachesDelegation(t *testing.T) {
	c := codec.NewCBOR()
	sender := models.SelfAuthenticatingPrincipal([]byte("key"))

	srv := replicaStub(t, c, func(r *http.Request, env models.CallEnvelope) models.CallReply {
		assert.Equal(t, "/api/v3/canister/"+testBackend.String()+"/call", r.URL.Path)
		assert.Equal(t, "Bearer delegation-token", r.Header.Get("Authorization"))
		assert.Equal(t, models.RequestTypeCall, env.RequestType)
		assert.Equal(t, sender, env.Sender)

		arg, _ := c.EncodeTuple()
		return models.Replied(arg)
	})
	defer srv.Close()

	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "delegation-token", TokenType: "Bearer"})
	a := newTestAgent(t, srv.URL, c, WithTokenSource(tokens, sender))

	assert.Equal(t, sender, a.Sender())
	require.NoError(t, a.Call(context.Background(), testBackend, "remove_all_groups", nil))
}

func TestAgent_RejectedCall(t *testing.T) {
	c := codec.NewCBOR()
	srv := replicaStub(t, c, func(r *http.Request, env models.CallEnvelope) models.CallReply {
		return models.Rejected(models.RejectCanisterReject, "IC0406", "Caller is anonymous.")
	})
	defer srv.Close()

	a := newTestAgent(t, srv.URL, c)
	err := a.Call(context.Background(), testBackend, "subscribe_group", []any{"g"})

	require.Error(t, err)
	assert.True(t, IsReject(err, models.RejectCanisterReject))
	assert.False(t, IsReject(err, models.RejectCanisterError))
	assert.Contains(t, err.Error(), "Caller is anonymous.")
}

func TestAgent_UnexpectedReplyStatus(t *testing.T) {
	c := codec.NewJSON()
	srv := replicaStub(t, c, func(r *http.Request, env models.CallEnvelope) models.CallReply {
		return models.CallReply{Status: "processing"}
	})
	defer srv.Close()

	a := newTestAgent(t, srv.URL, c)
	err := a.Query(context.Background(), testBackend, "whoami", nil)
	assert.ErrorIs(t, err, ErrUnexpectedReply)

	srv2 := replicaStub(t, c, func(r *http.Request, env models.CallEnvelope) models.CallReply {
		return models.CallReply{Status: models.StatusReplied}
	})
	defer srv2.Close()

	a = newTestAgent(t, srv2.URL, c)
	err = a.Query(context.Background(), testBackend, "whoami", nil)
	assert.ErrorIs(t, err, ErrUnexpectedReply)
}

func TestAgent_HTTPErrorsAreMapped(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusUnsupportedMediaType, want: ErrUnsupportedMedia},
		{status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			a := newTestAgent(t, srv.URL, codec.NewCBOR())
			err := a.Query(context.Background(), testBackend, "whoami", nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAgent_UnknownStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAgent(t, srv.URL, codec.NewCBOR())
	err := a.Query(context.Background(), testBackend, "whoami", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestAgent_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"replica_health_status":"healthy","impl_version":"1.0.0","interface_revision":"v2"}`))
	}))
	defer srv.Close()

	a := newTestAgent(t, srv.URL, codec.NewCBOR())
	status, err := a.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.ReplicaHealthStatus)
	assert.Equal(t, "v2", status.Revision)
}

func TestAgent_NonceFailureStopsTheCall(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	a := newTestAgent(t, srv.URL, codec.NewCBOR()).(*httpAgent)
	a.entropy = iotest.ErrReader(io.ErrUnexpectedEOF)

	err := a.Call(context.Background(), testBackend, "whoami", nil)

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "generate whoami nonce")
	assert.Zero(t, hits)
}

func TestNewHTTPAgent_InvalidURL(t *testing.T) {
	_, err := NewHTTPAgent(config.ClientAdapter{ReplicaURL: "  "}, codec.NewCBOR(), logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "127.0.0.1:4943", want: "http://127.0.0.1:4943"},
		{in: "https://icp-api.io/", want: "https://icp-api.io"},
		{in: "http://127.0.0.1:4943/?canisterId=x", want: "http://127.0.0.1:4943"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
