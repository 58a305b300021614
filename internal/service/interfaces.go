package service

import (
	"context"

	"github.com/samidy/monosync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentitySource exposes the currently authenticated user, or nil when
// signed out. Implemented by the identity provider.
type IdentitySource interface {
	Current() *models.Identity
}

// SyncEngine reconciles the local offline library with the per-user cloud
// record and manages the public copies of shared playlists.
//
// All mutating operations are no-ops when no user is signed in or when the
// cloud record cannot be reached; remote failures on the write path are
// logged, never surfaced to the caller mid-listen.
type SyncEngine interface {
	// ReadUserData fetches the cloud record and returns its four data
	// fields decoded. Returns nil when signed out or the record is
	// unreachable.
	ReadUserData(ctx context.Context) (*models.UserData, error)

	// SyncLibraryItem adds (added=true) or removes the item from the
	// library category bucket of the cloud record.
	SyncLibraryItem(ctx context.Context, category string, item models.Item, added bool) error

	// SyncHistoryEntry prepends entry to the cloud play history, keeping
	// at most [models.HistoryLimit] entries.
	SyncHistoryEntry(ctx context.Context, entry models.Item) error

	// SyncUserPlaylist upserts (remove=false) or deletes (remove=true) a
	// user-created playlist snapshot. Public playlists are published on
	// upsert and unpublished on delete.
	SyncUserPlaylist(ctx context.Context, playlist models.Item, remove bool) error

	// SyncUserFolder upserts or deletes a playlist folder snapshot.
	SyncUserFolder(ctx context.Context, folder models.Item, remove bool) error

	// PublishPlaylist creates or updates the public copy of the playlist,
	// keyed by its uuid.
	PublishPlaylist(ctx context.Context, playlist models.Item) error

	// UnpublishPlaylist deletes the public copy, if one exists.
	UnpublishPlaylist(ctx context.Context, uuid string) error

	// FetchPublicPlaylist resolves a shared playlist by uuid into a view
	// ready for display. Returns nil without error when no public copy
	// exists.
	FetchPublicPlaylist(ctx context.Context, uuid string) (*models.PublicPlaylistView, error)

	// ClearCloudData deletes the user's cloud record and drops the cache.
	ClearCloudData(ctx context.Context) error

	// Reconcile merges the local offline library into the cloud record
	// without overwriting cloud entries, persists the modified fields, and
	// imports the merged state back into the local store. Concurrent calls
	// are dropped, not queued.
	Reconcile(ctx context.Context) error

	// InvalidateCache drops the cached cloud record. Called on sign-out.
	InvalidateCache()
}
