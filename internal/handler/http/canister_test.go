package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/models"
)

func TestHandleCall_RepliesInTheRequestCodec(t *testing.T) {
	for _, c := range []codec.Codec{codec.NewCBOR(), codec.NewJSON()} {
		t.Run(c.Name(), func(t *testing.T) {
			th := newTestHandler(t, config.Server{})

			rec := th.serve(envelopeRequest(t, c, queryEnvelope(models.AnonymousPrincipal)))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, c.ContentType(), rec.Header().Get("Content-Type"))

			var reply models.CallReply
			require.NoError(t, c.Unmarshal(rec.Body.Bytes(), &reply))
			assert.Equal(t, models.StatusReplied, reply.Status)

			require.Len(t, th.dispatcher.calls, 1)
			got := th.dispatcher.calls[0]
			assert.Equal(t, models.RequestTypeQuery, got.requestType)
			assert.Equal(t, "show_collections", got.env.MethodName)
			assert.Equal(t, models.AnonymousPrincipal, got.caller)
		})
	}
}

func TestHandleCall_CallEndpoint(t *testing.T) {
	th := newTestHandler(t, config.Server{})
	env := queryEnvelope(models.AnonymousPrincipal)
	env.RequestType = models.RequestTypeCall

	rec := th.serve(envelopeRequest(t, codec.NewCBOR(), env))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, th.dispatcher.calls, 1)
	assert.Equal(t, models.RequestTypeCall, th.dispatcher.calls[0].requestType)
}

func TestHandleCall_DelegatedCaller(t *testing.T) {
	th := newTestHandler(t, config.Server{})
	th.identity.EXPECT().ParseToken(gomock.Any(), "tok").Return(alice, nil)

	req := envelopeRequest(t, codec.NewCBOR(), queryEnvelope(alice))
	req.Header.Set("Authorization", "Bearer tok")
	rec := th.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, th.dispatcher.calls, 1)
	assert.Equal(t, alice, th.dispatcher.calls[0].caller)
}

func TestHandleCall_EmptySenderIsTheCaller(t *testing.T) {
	th := newTestHandler(t, config.Server{})
	env := queryEnvelope(models.ManagementPrincipal)

	rec := th.serve(envelopeRequest(t, codec.NewJSON(), env))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, th.dispatcher.calls, 1)
	assert.Equal(t, models.AnonymousPrincipal, th.dispatcher.calls[0].env.Sender)
}

func TestHandleCall_RefusedEnvelopes(t *testing.T) {
	cbor := codec.NewCBOR()
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name       string
		request    func(t *testing.T) *http.Request
		wantStatus int
	}{
		{
			name: "unsupported content type",
			request: func(t *testing.T) *http.Request {
				req := envelopeRequest(t, cbor, queryEnvelope(models.AnonymousPrincipal))
				req.Header.Set("Content-Type", "text/plain")
				return req
			},
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name: "invalid canister id in path",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/v2/canister/not-a-principal!/query", strings.NewReader("{}"))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "garbage body",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/v2/canister/"+factoryID.String()+"/query", strings.NewReader("{"))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "request type does not match the endpoint",
			request: func(t *testing.T) *http.Request {
				env := queryEnvelope(models.AnonymousPrincipal)
				env.RequestType = models.RequestTypeCall
				body, err := cbor.Marshal(env)
				require.NoError(t, err)
				req := httptest.NewRequest(http.MethodPost, "/api/v2/canister/"+factoryID.String()+"/query", bytes.NewReader(body))
				req.Header.Set("Content-Type", cbor.ContentType())
				return req
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "canister does not match the path",
			request: func(t *testing.T) *http.Request {
				env := queryEnvelope(models.AnonymousPrincipal)
				body, err := cbor.Marshal(env)
				require.NoError(t, err)
				req := httptest.NewRequest(http.MethodPost, "/api/v2/canister/"+models.CanisterPrincipal(2).String()+"/query", bytes.NewReader(body))
				req.Header.Set("Content-Type", cbor.ContentType())
				return req
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "sender without a delegation",
			request: func(t *testing.T) *http.Request {
				return envelopeRequest(t, cbor, queryEnvelope(bob))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "ingress expired",
			request: func(t *testing.T) *http.Request {
				env := queryEnvelope(models.AnonymousPrincipal)
				env.IngressExpiry = uint64(now.Add(-time.Second).UnixNano())
				return envelopeRequest(t, cbor, env)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "envelope too large",
			request: func(t *testing.T) *http.Request {
				env := queryEnvelope(models.AnonymousPrincipal)
				env.Arg = make([]byte, maxEnvelopeSize+1)
				return envelopeRequest(t, cbor, env)
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t, config.Server{})
			th.h.now = func() time.Time { return now }

			rec := th.serve(tt.request(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, th.dispatcher.calls)
		})
	}
}

func TestHandleCall_SenderMismatchWithDelegation(t *testing.T) {
	th := newTestHandler(t, config.Server{})
	th.identity.EXPECT().ParseToken(gomock.Any(), "tok").Return(alice, nil)

	req := envelopeRequest(t, codec.NewCBOR(), queryEnvelope(bob))
	req.Header.Set("Authorization", "Bearer tok")
	rec := th.serve(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrSenderMismatch.Error())
	assert.Empty(t, th.dispatcher.calls)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: codec.ErrUnknownCodec, want: http.StatusUnsupportedMediaType},
		{err: ErrSenderMismatch, want: http.StatusForbidden},
		{err: service.ErrDelegationTooOld, want: http.StatusUnauthorized},
		{err: context.Canceled, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
