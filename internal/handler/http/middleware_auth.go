// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/internal/utils"
)

// auth is the access-control gate in front of protected routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken] and, on success, stores
// the authenticated [models.Identity] in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler.
//
// Every rejection (missing header, malformed header, empty token, expired or
// otherwise invalid token) produces the same response:
//
//	401 {"message":"Unauthorized"}
//
// The specific cause is logged via the request-scoped logger only.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Msg("request rejected")
			utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Msg("request rejected")
			utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithIdentity(ctx, token.Identity())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

const bearerScheme = "Bearer"

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns the following
// sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the scheme is not Bearer, there is
//     no separating space, or more than two space-separated parts.
//   - [ErrEmptyToken] if the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	if tokenString == "" {
		return "", ErrEmptyToken
	}

	if strings.Contains(tokenString, " ") {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
