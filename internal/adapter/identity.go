package adapter

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
	"github.com/MKhiriev/icrc7-dapp/models"
)

const delegationPath = "/api/v2/identity/delegation"

// expiryDelta renews a delegation slightly before it lapses.
const expiryDelta = 30 * time.Second

type httpIdentityProvider struct {
	client *utils.HTTPClient
	query  url.Values

	logger *logger.Logger
}

// NewHTTPIdentityProvider constructs an [IdentityProvider] for
// adapterCfg.IdentityProviderURL. Query parameters of the provider URL (the
// local "?canisterId=" form) are forwarded with every request.
func NewHTTPIdentityProvider(adapterCfg config.ClientAdapter, logger *logger.Logger) (IdentityProvider, error) {
	if adapterCfg.IdentityProviderURL == "" {
		return nil, ErrEmptyProviderURL
	}

	u, err := url.Parse(adapterCfg.IdentityProviderURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity provider url: %w", err)
	}
	baseURL, err := normalizeBaseURL(u.Scheme + "://" + u.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid identity provider url: %w", err)
	}

	return &httpIdentityProvider{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		query:  u.Query(),
		logger: logger,
	}, nil
}

// Delegate implements [IdentityProvider]. It POSTs the signed challenge to
// /api/v2/identity/delegation and returns the issued delegation.
func (p *httpIdentityProvider) Delegate(ctx context.Context, req models.DelegationRequest) (models.Delegation, error) {
	var delegation models.Delegation

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(p.query).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&delegation).
		Post(delegationPath)
	if err != nil {
		return models.Delegation{}, fmt.Errorf("delegation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		p.logger.Err(err).Str("func", "*httpIdentityProvider.Delegate").Msg("identity provider refused delegation")
		return models.Delegation{}, err
	}

	return delegation, nil
}

// delegationSource is an [oauth2.TokenSource] that logs in with signer on
// every call. Wrap it with [oauth2.ReuseTokenSource] to cache the result.
type delegationSource struct {
	ctx      context.Context
	provider IdentityProvider
	signer   Signer
	now      func() time.Time
}

// NewDelegationTokenSource returns a token source that requests a delegation
// for signer from provider and reuses it until shortly before it expires.
func NewDelegationTokenSource(ctx context.Context, provider IdentityProvider, signer Signer) oauth2.TokenSource {
	return oauth2.ReuseTokenSourceWithExpiry(nil, &delegationSource{
		ctx:      ctx,
		provider: provider,
		signer:   signer,
		now:      time.Now,
	}, expiryDelta)
}

func (s *delegationSource) Token() (*oauth2.Token, error) {
	ts := s.now().UnixNano()
	req := models.DelegationRequest{
		PublicKey: s.signer.PublicKeyDER(),
		Timestamp: ts,
		Signature: s.signer.Sign(models.DelegationChallenge(ts)),
	}

	delegation, err := s.provider.Delegate(s.ctx, req)
	if err != nil {
		return nil, err
	}
	if delegation.Principal != s.signer.Principal() {
		return nil, fmt.Errorf("%w: delegation issued for %s, expected %s", ErrUnauthorized, delegation.Principal, s.signer.Principal())
	}

	return &oauth2.Token{
		AccessToken: delegation.Token,
		TokenType:   "Bearer",
		Expiry:      delegation.Expiration,
	}, nil
}
