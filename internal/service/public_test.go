// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/models"
)

func returnPublicRecord(rec models.PublicPlaylistRecord) func(context.Context, string, baas.Filter, any) error {
	return func(_ context.Context, _ string, _ baas.Filter, out any) error {
		*out.(*models.PublicPlaylistRecord) = rec
		return nil
	}
}

func TestPublishPlaylist_UpdatesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	records.EXPECT().
		GetFirst(gomock.Any(), baas.PublicPlaylistsCollection, baas.Equal("uuid", "p1"), gomock.Any()).
		DoAndReturn(returnPublicRecord(models.PublicPlaylistRecord{ID: "pub1", UUID: "p1"}))
	records.EXPECT().
		Update(gomock.Any(), baas.PublicPlaylistsCollection, "pub1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body, _ any) error {
			m := body.(map[string]any)

			// Denormalized columns all carry the same values.
			assert.Equal(t, "Mix Tape", m["title"])
			assert.Equal(t, "Mix Tape", m["name"])
			assert.Equal(t, "Mix Tape", m["playlist_name"])
			assert.Equal(t, "c.jpg", m["image"])
			assert.Equal(t, "c.jpg", m["cover"])
			assert.Equal(t, "c.jpg", m["playlist_cover"])

			// Plus the auxiliary blob.
			data := m["data"].(map[string]any)
			assert.Equal(t, "Mix Tape", data["title"])
			assert.Equal(t, "c.jpg", data["cover"])

			// Tracks are serialized.
			assert.IsType(t, "", m["tracks"])
			return nil
		})

	playlist := models.Item{"id": "p1", "name": "Mix Tape", "cover": "c.jpg", "isPublic": true}
	require.NoError(t, engine.PublishPlaylist(context.Background(), playlist))
}

func TestPublishPlaylist_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, _, _, _ := newTestEngine(t, ctrl, testUser())

	err := engine.PublishPlaylist(context.Background(), models.Item{"name": "No ID"})
	assert.ErrorIs(t, err, ErrMissingPlaylistID)
}

func TestPublishPlaylist_SignedOutIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, _, _, _ := newTestEngine(t, ctrl, nil)

	require.NoError(t, engine.PublishPlaylist(context.Background(), models.Item{"id": "p1"}))
}

func TestUnpublishPlaylist_NoPublicCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	records.EXPECT().
		GetFirst(gomock.Any(), baas.PublicPlaylistsCollection, gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: nothing", baas.ErrNotFound))

	require.NoError(t, engine.UnpublishPlaylist(context.Background(), "ghost"))
}

func TestFetchPublicPlaylist_ResolvesView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	rec := models.PublicPlaylistRecord{
		ID:          "pub1",
		UUID:        "p1",
		Title:       "Shared",
		Description: "desc",
		Image:       "cover.png",
		Tracks:      `[{"id": "t1"}, {"id": "t2"}]`,
	}
	records.EXPECT().
		GetFirst(gomock.Any(), baas.PublicPlaylistsCollection, baas.Equal("uuid", "p1"), gomock.Any()).
		DoAndReturn(returnPublicRecord(rec))
	records.EXPECT().
		FileURL(baas.PublicPlaylistsCollection, "pub1", "cover.png").
		Return("https://files.example.com/cover.png")

	view, err := engine.FetchPublicPlaylist(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, "p1", view.ID)
	assert.Equal(t, "Shared", view.Title)
	assert.Equal(t, "Shared", view.Name)
	assert.Equal(t, "https://files.example.com/cover.png", view.Cover)
	assert.Len(t, view.Tracks, 2)
	assert.Equal(t, 2, view.NumberOfTracks)
	assert.Equal(t, models.PublicPlaylistType, view.Type)
	assert.Equal(t, models.CommunityOwnerName, view.OwnerName)
	assert.True(t, view.IsPublic)
	assert.Empty(t, view.Images, "thumbnails only built when no cover resolves")
}

func TestFetchPublicPlaylist_AbsoluteCoverNotResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	rec := models.PublicPlaylistRecord{ID: "pub1", UUID: "p1", Cover: "https://cdn.example.com/c.jpg"}
	records.EXPECT().
		GetFirst(gomock.Any(), baas.PublicPlaylistsCollection, gomock.Any(), gomock.Any()).
		DoAndReturn(returnPublicRecord(rec))

	view, err := engine.FetchPublicPlaylist(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/c.jpg", view.Cover)
}

func TestFetchPublicPlaylist_FallbackChains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	// Nothing in the dedicated columns; everything lives in the data blob.
	rec := models.PublicPlaylistRecord{
		ID:   "pub1",
		UUID: "p1",
		Data: `{"title": "From Blob", "cover": "data:image/png;base64,xyz", "description": "blob desc"}`,
	}
	records.EXPECT().
		GetFirst(gomock.Any(), baas.PublicPlaylistsCollection, gomock.Any(), gomock.Any()).
		DoAndReturn(returnPublicRecord(rec))

	view, err := engine.FetchPublicPlaylist(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "From Blob", view.Title)
	assert.Equal(t, "blob desc", view.Description)
	assert.Equal(t, "data:image/png;base64,xyz", view.Cover, "data URIs pass through unresolved")
}

func TestFetchPublicPlaylist_UntitledFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	records.EXPECT().
		GetFirst(gomock.Any(), baas.PublicPlaylistsCollection, gomock.Any(), gomock.Any()).
		DoAndReturn(returnPublicRecord(models.PublicPlaylistRecord{ID: "pub1", UUID: "p1"}))

	view, err := engine.FetchPublicPlaylist(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPlaylistTitle, view.Title)
}

func TestFetchPublicPlaylist_TrackCoverThumbnails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	rec := models.PublicPlaylistRecord{
		ID:   "pub1",
		UUID: "p1",
		Tracks: `[
			{"id": "t1", "album": {"cover": "c1"}},
			{"id": "t2", "album": {"cover": "c2"}},
			{"id": "t3", "album": {"cover": "c1"}},
			{"id": "t4", "album": {"cover": "c3"}},
			{"id": "t5"},
			{"id": "t6", "album": {"cover": "c4"}},
			{"id": "t7", "album": {"cover": "c5"}}
		]`,
	}
	records.EXPECT().
		GetFirst(gomock.Any(), baas.PublicPlaylistsCollection, gomock.Any(), gomock.Any()).
		DoAndReturn(returnPublicRecord(rec))

	view, err := engine.FetchPublicPlaylist(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, view.Images,
		"four distinct covers in track order, duplicates skipped")
}

func TestFetchPublicPlaylist_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	records.EXPECT().
		GetFirst(gomock.Any(), baas.PublicPlaylistsCollection, gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: nothing", baas.ErrNotFound))

	view, err := engine.FetchPublicPlaylist(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestFetchPublicPlaylist_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	records.EXPECT().
		GetFirst(gomock.Any(), baas.PublicPlaylistsCollection, gomock.Any(), gomock.Any()).
		Return(errors.New("service unavailable"))

	_, err := engine.FetchPublicPlaylist(context.Background(), "p1")
	require.Error(t, err)
}

func TestClearCloudData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, _, _ := newTestEngine(t, ctrl, testUser())

	gomock.InOrder(
		records.EXPECT().
			GetFirst(gomock.Any(), baas.UserDataCollection, gomock.Any(), gomock.Any()).
			DoAndReturn(returnRecord(models.UserRecord{ID: "rec1", UserID: "u1"})),
		records.EXPECT().
			Delete(gomock.Any(), baas.UserDataCollection, "rec1").
			Return(nil),
		// The cache is dropped, so the next access fetches again.
		records.EXPECT().
			GetFirst(gomock.Any(), baas.UserDataCollection, gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: nothing", baas.ErrNotFound)),
		records.EXPECT().
			Create(gomock.Any(), baas.UserDataCollection, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, out any) error {
				*out.(*models.UserRecord) = models.UserRecord{ID: "rec2", UserID: "u1"}
				return nil
			}),
	)

	require.NoError(t, engine.ClearCloudData(context.Background()))

	record := engine.getUserRecord(context.Background(), "u1")
	require.NotNil(t, record)
	assert.Equal(t, "rec2", record.ID)
}

func TestClearCloudData_SignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, _, _, _ := newTestEngine(t, ctrl, nil)

	err := engine.ClearCloudData(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}
