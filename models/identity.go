// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated caller of a request, derived from a verified
// token. It lives in the request context for the duration of one request.
type Identity struct {
	// SubjectID is the "sub" claim of the verified token, i.e. the [User.ID]
	// the token was issued for.
	SubjectID string
}
