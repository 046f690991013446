// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks register and login payloads before the auth
// service hashes, stores or compares anything.
//
// [CredentialsValidator] runs only the rules named by the caller, so
// registration applies [RegisterFields] (name, email shape, password length)
// while login applies [LoginFields] (email and password present). Every
// failure is one of the sentinel errors in errors.go, which the auth service
// wraps with its own invalid-data error.
package validators

import "context"

// Validator validates a request value against the named rules. A value of an
// unsupported type yields [ErrUnsupportedType] and an unknown rule name
// yields [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
