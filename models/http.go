// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the request body of the register and login endpoints.
// Name is only read during registration.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	// Token is the signed bearer token for the authenticated user.
	Token string `json:"token"`

	// User is the public projection of the authenticated user.
	User Profile `json:"user"`
}

// MessageResponse is the JSON body of every error response:
//
//	{"message": "User not found"}
type MessageResponse struct {
	Message string `json:"message"`
}
