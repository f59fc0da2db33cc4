package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/validators"
	"github.com/MKhiriev/icrc7-dapp/models"
)

var identityNow = time.Now().Truncate(time.Second)

func newTestIdentitySvc() *identityService {
	cfg := config.App{TokenSignKey: "sign-key", TokenIssuer: "icrc7-replica", TokenDuration: time.Hour}
	svc := NewIdentityService(cfg, validators.NewRequestValidator(), logger.Nop()).(*identityService)
	svc.now = func() time.Time { return identityNow }
	return svc
}

func signedRequest(t *testing.T, issued time.Time) models.DelegationRequest {
	t.Helper()
	identity := testIdentity(t)
	ts := issued.UnixNano()
	return models.DelegationRequest{
		PublicKey: identity.PublicKeyDER(),
		Timestamp: ts,
		Signature: identity.Sign(models.DelegationChallenge(ts)),
	}
}

func TestIdentity_Delegate_RoundTrip(t *testing.T) {
	svc := newTestIdentitySvc()
	req := signedRequest(t, identityNow)

	delegation, err := svc.Delegate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, testIdentity(t).Principal(), delegation.Principal)
	assert.NotEmpty(t, delegation.Token)
	assert.True(t, delegation.Expiration.After(time.Now()))

	principal, err := svc.ParseToken(context.Background(), delegation.Token)
	require.NoError(t, err)
	assert.Equal(t, delegation.Principal, principal)
}

func TestIdentity_Delegate_OutsideWindow(t *testing.T) {
	svc := newTestIdentitySvc()

	for _, issued := range []time.Time{
		identityNow.Add(-DelegationWindow - time.Second),
		identityNow.Add(DelegationWindow + time.Second),
	} {
		_, err := svc.Delegate(context.Background(), signedRequest(t, issued))
		require.ErrorIs(t, err, ErrDelegationTooOld)
	}
}

func TestIdentity_Delegate_BadSignature(t *testing.T) {
	svc := newTestIdentitySvc()
	req := signedRequest(t, identityNow)
	req.Signature[0] ^= 0xff

	_, err := svc.Delegate(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidDelegation)
}

func TestIdentity_Delegate_MissingFields(t *testing.T) {
	svc := newTestIdentitySvc()

	_, err := svc.Delegate(context.Background(), models.DelegationRequest{Timestamp: identityNow.UnixNano()})

	require.ErrorIs(t, err, ErrInvalidDelegation)
	assert.ErrorIs(t, err, validators.ErrEmptyPublicKey)
}

func TestIdentity_ParseToken_Invalid(t *testing.T) {
	svc := newTestIdentitySvc()

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	other := newTestIdentitySvc()
	other.tokenIssuer = "someone-else"
	delegation, err := other.Delegate(context.Background(), signedRequest(t, identityNow))
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), delegation.Token)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
