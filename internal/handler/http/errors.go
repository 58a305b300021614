// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used when resolving a session from the incoming request.
// Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the request carries no session
	// cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidSession is returned when the session cookie is present but
	// its token fails validation (bad signature, wrong issuer, expired).
	ErrInvalidSession = errors.New("invalid session cookie")
)
