// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/internal/utils"
	"github.com/MKhiriev/go-auth-profile/models"
)

// register handles POST /api/auth/register.
// On success it responds 201 with {"token","user"} and repeats the token in
// the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Int("status", status).Msg("user registration failed")
		utils.WriteMessage(w, message, status)
		return
	}

	h.writeAuthResponse(w, r, registeredUser, http.StatusCreated)
}

// login handles POST /api/auth/login.
// Unknown email and wrong password produce the same 401 response.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Int("status", status).Msg("user login failed")
		utils.WriteMessage(w, message, status)
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	h.writeAuthResponse(w, r, foundUser, http.StatusOK)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, msgServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err := utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user.Profile()}, status); err != nil {
		log.Err(err).Msg("error writing auth response")
	}
}
