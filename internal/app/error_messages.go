// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// monosync gate handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the gate.
package app

const (
	// MsgMissingToken is returned when a login exchange request carries no
	// token field or a non-string one.
	MsgMissingToken = "Missing or invalid token"

	// MsgInvalidToken is returned when the record service rejects the
	// supplied bearer token as invalid or expired.
	MsgInvalidToken = "Invalid or expired token"

	// MsgAuthServerError is returned when token verification fails for a
	// reason other than rejection, e.g. the record service is unreachable.
	MsgAuthServerError = "Server error during authentication"

	// MsgUnauthorized is returned for unauthenticated requests to non-page
	// resources behind the gate.
	MsgUnauthorized = "Unauthorized"

	// MsgLoginPageNotFound is returned when the login page is requested but
	// absent from the dist directory.
	MsgLoginPageNotFound = "Login page not found"
)
