// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/samidy/monosync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Local storage buckets. Favorites are split per catalog category; the
// remaining buckets mirror the extra fields of the per-user cloud record.
const (
	BucketFavoritesTracks    = "favorites_tracks"
	BucketFavoritesAlbums    = "favorites_albums"
	BucketFavoritesArtists   = "favorites_artists"
	BucketFavoritesPlaylists = "favorites_playlists"
	BucketFavoritesMixes     = "favorites_mixes"
	BucketHistoryTracks      = "history_tracks"
	BucketUserPlaylists      = "user_playlists"
	BucketUserFolders        = "user_folders"
)

// Buckets lists every local storage bucket in a stable order.
var Buckets = []string{
	BucketFavoritesTracks,
	BucketFavoritesAlbums,
	BucketFavoritesArtists,
	BucketFavoritesPlaylists,
	BucketFavoritesMixes,
	BucketHistoryTracks,
	BucketUserPlaylists,
	BucketUserFolders,
}

// LibraryStore is the offline library repository backed by the local SQLite
// database. Items inside a bucket keep their insertion order.
type LibraryStore interface {
	// GetAll returns every item of the bucket, ordered by position.
	GetAll(ctx context.Context, bucket string) ([]models.Item, error)

	// ReplaceBucket atomically swaps the bucket contents for items.
	ReplaceBucket(ctx context.Context, bucket string, items []models.Item) error

	// UpsertItem inserts or overwrites a single item, appending it at the
	// end of the bucket when it is new.
	UpsertItem(ctx context.Context, bucket string, item models.Item) error

	// DeleteItem removes the item with the given key from the bucket.
	DeleteItem(ctx context.Context, bucket, key string) error

	// ImportData atomically replaces the contents of every bucket present
	// in data. Buckets absent from data are left untouched.
	ImportData(ctx context.Context, data map[string][]models.Item) error
}
