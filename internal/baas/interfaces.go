// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package baas is the transport layer for the external record service (the
// Backbase instance) that owns authentication, per-user documents, and file
// hosting. Nothing in this repository implements record storage itself; the
// service is consumed strictly through its REST API.
//
// The package exposes three narrow interfaces so that the sync engine, the
// identity provider, and the session gate can each be tested against mocks:
// [RecordAPI] for collection record CRUD, [AuthAPI] for the end-user auth
// flows, and [TokenVerifier] for server-side bearer token verification.
// Error values defined in errors.go are mapped from HTTP status codes by
// mapAPIError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package baas

import (
	"context"

	"github.com/samidy/monosync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/baas_mock.go -package=mock

// RecordAPI is generic record CRUD against named collections of the record
// service. Results are decoded into out, which must be a pointer.
type RecordAPI interface {
	// GetOne fetches a single record by id. Returns [ErrNotFound] (wrapped)
	// when the record does not exist.
	GetOne(ctx context.Context, collection, id string, out any) error

	// GetFirst fetches the first record matching filter. Returns
	// [ErrNotFound] (wrapped) when nothing matches.
	GetFirst(ctx context.Context, collection string, filter Filter, out any) error

	// GetList fetches one page of records matching filter into out, which
	// must point to a slice. A nil filter matches everything.
	GetList(ctx context.Context, collection string, page, perPage int, filter Filter, out any) error

	// Create inserts a new record built from body and decodes the created
	// record into out when out is non-nil.
	Create(ctx context.Context, collection string, body, out any) error

	// Update applies a partial update to the record with the given id and
	// decodes the updated record into out when out is non-nil. Only the
	// fields present in body are written.
	Update(ctx context.Context, collection, id string, body, out any) error

	// Delete removes the record with the given id. Returns [ErrNotFound]
	// (wrapped) when it does not exist.
	Delete(ctx context.Context, collection, id string) error

	// FileURL resolves a stored file reference of a record to an absolute
	// URL on the record service.
	FileURL(collection, recordID, filename string) string
}

// AuthAPI covers the end-user authentication flows of the record service.
// All password handling happens remotely; the client never sees a hash.
type AuthAPI interface {
	// SignInWithPassword authenticates with email and password. On success
	// the returned state carries the bearer token and the identity record,
	// and the token is retained for subsequent authenticated requests.
	SignInWithPassword(ctx context.Context, email, password string) (models.AuthState, error)

	// SignUp creates a new account and signs it in.
	SignUp(ctx context.Context, email, password string) (models.AuthState, error)

	// RequestPasswordReset asks the service to email a reset link.
	RequestPasswordReset(ctx context.Context, email string) error

	// SignOut drops the retained bearer token. Purely client-side; the
	// service keeps no session state.
	SignOut()
}

// TokenVerifier validates a client-supplied bearer token server-side. The
// record service exposes no key material for local validation, so the only
// reliable check is its auth-refresh endpoint.
type TokenVerifier interface {
	// Verify returns the identity the token belongs to, or
	// [ErrUnauthorized] (wrapped) when the token is invalid or expired.
	// Transport failures are returned as ordinary errors and must be
	// distinguished from rejection by the caller.
	Verify(ctx context.Context, token string) (*models.Identity, error)
}
