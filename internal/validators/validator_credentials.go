// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-profile/models"
)

const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldEmailPresent  = "email_present"
	FieldPassword      = "password"
	FieldPasswordShape = "password_shape"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// RegisterFields are the rules applied to a registration request.
var RegisterFields = []string{FieldName, FieldEmail, FieldPasswordShape}

// LoginFields are the rules applied to a login request: presence only, so a
// login attempt never reveals the registration rules.
var LoginFields = []string{FieldEmailPresent, FieldPassword}

type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = RegisterFields
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(credentials.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isValidEmail(credentials.Email) {
				return ErrInvalidEmail
			}
		case FieldEmailPresent:
			if strings.TrimSpace(credentials.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordShape:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
			if len([]rune(credentials.Password)) < MinPasswordLength {
				return ErrShortPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts "local@domain.tld": a non-empty local part, an "@",
// and a dot somewhere after it that is neither first nor last in the domain.
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return false
	}

	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// NormalizeEmail trims and lower-cases an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
