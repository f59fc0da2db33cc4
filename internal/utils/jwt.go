package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/icrc7-dapp/models"
)

// ErrInvalidAuthorizationHeader is returned for malformed bearer headers.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateDelegationToken creates a signed HMAC-SHA256 delegation for
// principal.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the identity provider
//   - Subject   (sub): the textual principal
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if issuer, tokenDuration or signKey is empty or zero, or
// if principal is anonymous.
func GenerateDelegationToken(issuer string, principal models.Principal, tokenDuration time.Duration, signKey string) (models.DelegationToken, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.DelegationToken{}, errors.New("invalid params for generating delegation token")
	}
	if principal.IsAnonymous() {
		return models.DelegationToken{}, errors.New("cannot delegate the anonymous principal")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   principal.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.DelegationToken{}, fmt.Errorf("error occurred during signing delegation token: %w", err)
	}

	return models.DelegationToken{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Principal:        principal,
	}, nil
}

// ValidateAndParseDelegationToken verifies the signature, issuer and expiry
// of tokenString and extracts the delegated principal.
func ValidateAndParseDelegationToken(tokenString, tokenSignKey, tokenIssuer string) (models.DelegationToken, error) {
	parsed := models.DelegationToken{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.DelegationToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	parsed.Token = token
	parsed.SignedString = tokenString

	principal, err := parsed.GetPrincipal()
	if err != nil {
		return models.DelegationToken{}, err
	}
	if principal.IsAnonymous() {
		return models.DelegationToken{}, errors.New("delegation subject is anonymous")
	}
	parsed.Principal = principal

	return parsed, nil
}

// ParseDelegationUnverified reads the claims of a delegation without checking
// its signature. The client uses it to learn the expiry of a delegation it
// just received from the identity provider.
func ParseDelegationUnverified(tokenString string) (models.DelegationToken, error) {
	parsed := models.DelegationToken{}
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &parsed.RegisteredClaims)
	if err != nil {
		return models.DelegationToken{}, err
	}
	parsed.Token = token
	parsed.SignedString = tokenString

	principal, err := parsed.GetPrincipal()
	if err != nil {
		return models.DelegationToken{}, err
	}
	parsed.Principal = principal
	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
