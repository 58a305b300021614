package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samidy/monosync/models"
)

func withFixedNow(t *testing.T, millis int64) {
	t.Helper()
	prev := nowMillis
	nowMillis = func() int64 { return millis }
	t.Cleanup(func() { nowMillis = prev })
}

func TestMinifyItem_Track(t *testing.T) {
	withFixedNow(t, 1700000000000)

	track := models.Item{
		"id":       "t1",
		"title":    "Song",
		"duration": float64(213),
		"explicit": true,
		"artists": []any{
			map[string]any{"id": "a1", "name": "First", "picture": "unused.jpg"},
			map[string]any{"id": "a2", "name": "Second"},
		},
		"album": map[string]any{
			"id":           "al1",
			"title":        "Album",
			"cover":        "cover.jpg",
			"vibrantColor": "#fff",
			"tracks":       []any{"should", "not", "survive"},
		},
		"audioQuality": "should not survive",
	}

	min := MinifyItem(models.CategoryTrack, track)

	assert.Equal(t, "t1", min["id"])
	assert.Equal(t, int64(1700000000000), min["addedAt"])
	assert.Equal(t, "Song", min["title"])
	assert.Equal(t, true, min["explicit"])
	assert.NotContains(t, min, "audioQuality")

	// artist falls back to the first artists entry.
	artist := min["artist"].(models.Item)
	assert.Equal(t, "a1", artist["id"])

	artists := min["artists"].([]any)
	require.Len(t, artists, 2)
	first := artists[0].(models.Item)
	assert.Equal(t, "First", first["name"])
	assert.NotContains(t, first, "picture")

	album := min["album"].(models.Item)
	assert.Equal(t, "Album", album["title"])
	assert.NotContains(t, album, "tracks")
}

func TestMinifyItem_TrackKeepsExplicitAddedAt(t *testing.T) {
	withFixedNow(t, 42)

	min := MinifyItem(models.CategoryTrack, models.Item{"id": "t1", "addedAt": float64(1234)})
	assert.Equal(t, float64(1234), min["addedAt"])
}

func TestMinifyItem_AlbumArtistFallback(t *testing.T) {
	withFixedNow(t, 42)

	album := models.Item{
		"id": "al1",
		"artists": []any{
			map[string]any{"id": "a9", "name": "Only", "bio": "dropped"},
		},
	}

	min := MinifyItem(models.CategoryAlbum, album)
	artist := min["artist"].(models.Item)
	assert.Equal(t, "a9", artist["id"])
	assert.Equal(t, "Only", artist["name"])
	assert.NotContains(t, artist, "bio")
}

func TestMinifyItem_ArtistPictureFallsBackToImage(t *testing.T) {
	withFixedNow(t, 42)

	min := MinifyItem(models.CategoryArtist, models.Item{"id": "a1", "name": "N", "image": "img.jpg"})
	assert.Equal(t, "img.jpg", min["picture"])
}

func TestMinifyItem_Playlist(t *testing.T) {
	withFixedNow(t, 42)

	tests := []struct {
		name string
		item models.Item
		want map[string]any
	}{
		{
			name: "uuid preferred over id",
			item: models.Item{"uuid": "u-1", "id": "p-1", "title": "T"},
			want: map[string]any{"uuid": "u-1"},
		},
		{
			name: "id fallback and name as title",
			item: models.Item{"id": "p-1", "name": "Named"},
			want: map[string]any{"uuid": "p-1", "title": "Named"},
		},
		{
			name: "image falls back through squareImage to cover",
			item: models.Item{"id": "p-1", "cover": "c.jpg"},
			want: map[string]any{"image": "c.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min := MinifyItem(models.CategoryPlaylist, tt.item)
			for key, want := range tt.want {
				assert.Equal(t, want, min[key])
			}
		})
	}
}

func TestMinifyItem_PlaylistTrackCountFromTracks(t *testing.T) {
	withFixedNow(t, 42)

	item := models.Item{"id": "p-1", "tracks": []any{map[string]any{}, map[string]any{}}}
	min := MinifyItem(models.CategoryPlaylist, item)
	assert.Equal(t, 2, min["numberOfTracks"])
}

func TestMinifyItem_UnknownCategoryPassesThrough(t *testing.T) {
	item := models.Item{"id": "x", "anything": "stays"}
	assert.Equal(t, item, MinifyItem("podcast", item))
}

func TestMinifyItem_NilItem(t *testing.T) {
	assert.Nil(t, MinifyItem(models.CategoryTrack, nil))
}
