// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-profile/internal/service"
	"github.com/MKhiriev/go-auth-profile/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order: the first target matched by
// errors.Is decides the response.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, msgInvalidData}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, msgInvalidCredentials}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, msgUnauthorized}},

	{store.ErrLoginAlreadyExists, errorResponse{http.StatusConflict, msgUserAlreadyExists}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusNotFound, msgUserNotFound}},
}

// responseFromError maps a service or store error to the status and message
// sent to the client. Anything unrecognised is a 500 with a generic message.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, msgServerError
}
