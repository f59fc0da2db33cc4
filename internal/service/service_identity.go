package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/crypto"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
	"github.com/MKhiriev/icrc7-dapp/internal/validators"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// DelegationWindow bounds how far a challenge timestamp may be from the
// replica clock.
const DelegationWindow = 5 * time.Minute

// identityService is the concrete implementation of IdentityService.
// It verifies signed challenges and issues HS256 delegation tokens whose
// subject is the self-authenticating principal of the signing key.
type identityService struct {
	// tokenSignKey is the HMAC secret used to sign and verify delegations.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every delegation. Tokens
	// with another issuer are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a delegation remains valid.
	tokenDuration time.Duration

	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewIdentityService constructs an IdentityService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewIdentityService(cfg config.App, validator validators.Validator, logger *logger.Logger) IdentityService {
	return &identityService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		validator:     validator,
		now:           time.Now,
		logger:        logger,
	}
}

// Delegate verifies req and issues a delegation for the principal derived
// from its public key.
//
// Returns:
//   - ErrInvalidDelegation if the request is malformed or the signature does
//     not verify.
//   - ErrDelegationTooOld if the challenge timestamp is outside
//     [DelegationWindow].
//   - ErrTokenCreationFailed if the token cannot be signed.
func (s *identityService) Delegate(ctx context.Context, req models.DelegationRequest) (models.Delegation, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid delegation request")
		return models.Delegation{}, fmt.Errorf("%w: %w", ErrInvalidDelegation, err)
	}

	issued := time.Unix(0, req.Timestamp)
	if skew := s.now().Sub(issued); skew > DelegationWindow || skew < -DelegationWindow {
		log.Error().Time("issued", issued).Dur("skew", skew).Msg("delegation challenge out of window")
		return models.Delegation{}, ErrDelegationTooOld
	}

	principal, err := crypto.VerifySignature(req.PublicKey, models.DelegationChallenge(req.Timestamp), req.Signature)
	if err != nil {
		log.Error().Err(err).Msg("delegation signature rejected")
		return models.Delegation{}, fmt.Errorf("%w: %w", ErrInvalidDelegation, err)
	}

	token, err := utils.GenerateDelegationToken(s.tokenIssuer, principal, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Delegation{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("principal", principal.String()).Msg("delegation issued")
	return models.Delegation{
		Token:      token.SignedString,
		Principal:  principal,
		Expiration: token.ExpiresAt.Time,
	}, nil
}

// ParseToken validates a raw delegation and returns its principal. Any
// validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (s *identityService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	token, err := utils.ValidateAndParseDelegationToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Principal, nil
}
