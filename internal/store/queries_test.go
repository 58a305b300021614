// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildSelectBucketQuery(t *testing.T) {
	query, args, err := buildSelectBucketQuery(BucketFavoritesTracks)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from library_items")
	require.Contains(t, q, "where")
	require.Contains(t, q, "bucket")
	require.Contains(t, q, "order by position asc")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")

	require.Len(t, args, 1)
	require.Equal(t, BucketFavoritesTracks, args[0])
}

func Test_buildUpsertItemQuery(t *testing.T) {
	payload := []byte(`{"id":"t1"}`)

	query, args, err := buildUpsertItemQuery(BucketFavoritesTracks, "t1", payload)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into library_items")
	require.Contains(t, q, "on conflict(bucket, item_key)")
	require.Contains(t, q, "do update set payload = excluded.payload")

	// bucket, key, three subquery args, payload
	require.Len(t, args, 6)
	require.Equal(t, BucketFavoritesTracks, args[0])
	require.Equal(t, "t1", args[1])
	require.Equal(t, payload, args[5])
}

func Test_buildInsertItemQuery(t *testing.T) {
	payload := []byte(`{"uuid":"p1"}`)

	query, args, err := buildInsertItemQuery(BucketUserPlaylists, "p1", 3, payload)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into library_items")
	require.Contains(t, q, "bucket")
	require.Contains(t, q, "item_key")
	require.Contains(t, q, "position")
	require.Contains(t, q, "payload")

	require.Len(t, args, 4)
	require.Equal(t, BucketUserPlaylists, args[0])
	require.Equal(t, "p1", args[1])
	require.Equal(t, 3, args[2])
	require.Equal(t, payload, args[3])
}

func Test_buildDeleteItemQuery(t *testing.T) {
	query, args, err := buildDeleteItemQuery(BucketHistoryTracks, "t9")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from library_items")
	require.Contains(t, q, "bucket")
	require.Contains(t, q, "item_key")

	// squirrel sorts Eq keys, so bucket comes first.
	require.Len(t, args, 2)
	require.Equal(t, BucketHistoryTracks, args[0])
	require.Equal(t, "t9", args[1])
}

func Test_buildDeleteBucketQuery(t *testing.T) {
	query, args, err := buildDeleteBucketQuery(BucketUserFolders)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from library_items")
	require.Contains(t, q, "bucket")
	require.NotContains(t, q, "item_key")

	require.Len(t, args, 1)
	require.Equal(t, BucketUserFolders, args[0])
}

func Test_itemKey(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		item     map[string]any
		position int
		want     string
	}{
		{
			name:   "track keyed by id",
			bucket: BucketFavoritesTracks,
			item:   map[string]any{"id": "t1", "title": "Song"},
			want:   "t1",
		},
		{
			name:   "playlist prefers uuid",
			bucket: BucketUserPlaylists,
			item:   map[string]any{"uuid": "u-1", "id": "p-1"},
			want:   "u-1",
		},
		{
			name:   "playlist falls back to id",
			bucket: BucketUserPlaylists,
			item:   map[string]any{"id": "p-1"},
			want:   "p-1",
		},
		{
			name:     "keyless item uses position",
			bucket:   BucketHistoryTracks,
			item:     map[string]any{"title": "Untitled"},
			position: 7,
			want:     "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, itemKey(tt.bucket, tt.item, tt.position))
		})
	}
}
