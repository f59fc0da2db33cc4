package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
)

// auth resolves the caller of a canister call.
//
// A request without an Authorization header is anonymous and passes through
// with no principal in its context. A request that carries a header must
// present a valid bearer delegation: the delegated principal is stored under
// [utils.PrincipalCtxKey]. Any other header is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		principal, err := h.services.IdentityService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("delegation rejected")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		log.Debug().Str("caller", principal.String()).Msg("delegation accepted")
		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// getTokenFromAuthHeader extracts the token of an "<scheme> <token>" header
// value, e.g. "Bearer eyJhbGciOi...".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || scheme == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
