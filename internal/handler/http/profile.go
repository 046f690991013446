// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/internal/utils"
)

// getProfile handles GET /api/auth/profile. It is only reachable through
// the auth gate, so an identity is always present in the context.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context of protected route")
		utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(ctx, identity)
	if err != nil {
		status, message := responseFromError(err)
		if status == http.StatusNotFound {
			log.Info().Str("subject", identity.SubjectID).Msg("profile not found")
		} else {
			status, message = http.StatusInternalServerError, msgServerError
			log.Err(err).Str("subject", identity.SubjectID).Msg("profile lookup failed")
		}
		utils.WriteMessage(w, message, status)
		return
	}

	if _, err := utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing profile")
	}
}
