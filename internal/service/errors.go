package service

import "errors"

// Sentinel errors returned by the sync engine. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotSignedIn is returned by operations that require an
	// authenticated user when none is present.
	ErrNotSignedIn = errors.New("no authenticated user")

	// ErrNoUserRecord is returned when the cloud record could neither be
	// fetched nor created.
	ErrNoUserRecord = errors.New("no cloud user record available")

	// ErrMissingPlaylistID is returned when a playlist operation receives
	// an item without a usable id.
	ErrMissingPlaylistID = errors.New("playlist has no id")
)
