// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/mock"
	"github.com/samidy/monosync/internal/store"
	"github.com/samidy/monosync/models"
)

// expectEmptyBuckets serves empty local data for every bucket.
func expectEmptyBuckets(local *mock.MockLibraryStore) {
	local.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(nil, nil).Times(len(store.Buckets))
}

func TestReconcile_MergesLocalOnlyItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, local, _ := newTestEngine(t, ctrl, testUser())

	cloud := models.UserRecord{
		ID:      "rec1",
		UserID:  "u1",
		Library: `{"tracks": {"t-cloud": {"id": "t-cloud", "title": "Cloud Song"}}}`,
		History: `[{"id": "h-cloud"}]`,
	}
	records.EXPECT().
		GetFirst(gomock.Any(), baas.UserDataCollection, gomock.Any(), gomock.Any()).
		DoAndReturn(returnRecord(cloud))

	for _, bucket := range store.Buckets {
		switch bucket {
		case store.BucketFavoritesTracks:
			local.EXPECT().GetAll(gomock.Any(), bucket).Return([]models.Item{
				{"id": "t-cloud", "title": "Stale Local Copy"},
				{"id": "t-local", "title": "Local Only"},
			}, nil)
		case store.BucketHistoryTracks:
			local.EXPECT().GetAll(gomock.Any(), bucket).Return([]models.Item{{"id": "h-local"}}, nil)
		default:
			local.EXPECT().GetAll(gomock.Any(), bucket).Return(nil, nil)
		}
	}

	var writes []string
	records.EXPECT().
		Update(gomock.Any(), baas.UserDataCollection, "rec1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body, out any) error {
			m := body.(map[string]any)
			for field := range m {
				writes = append(writes, field)
			}
			if field, ok := m["library"]; ok {
				var decoded map[string]any
				requireJSONUnmarshal(t, field.(string), &decoded)
				tracks := decoded["tracks"].(map[string]any)

				// Cloud entry wins; local-only entry is inserted.
				cloudTrack := tracks["t-cloud"].(map[string]any)
				assert.Equal(t, "Cloud Song", cloudTrack["title"])
				assert.Contains(t, tracks, "t-local")
			}
			if field, ok := m["history"]; ok {
				var decoded []any
				requireJSONUnmarshal(t, field.(string), &decoded)

				// Cloud history was non-empty, so it stays untouched.
				require.Len(t, decoded, 1)
				assert.Equal(t, "h-cloud", decoded[0].(map[string]any)["id"])
			}
			*out.(*models.UserRecord) = cloud
			return nil
		}).
		Times(4)

	local.EXPECT().
		ImportData(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data map[string][]models.Item) error {
			tracks := data[store.BucketFavoritesTracks]
			require.Len(t, tracks, 2)

			history := data[store.BucketHistoryTracks]
			require.Len(t, history, 1)
			assert.Equal(t, "h-cloud", models.StringField(history[0], "id"))
			return nil
		})

	require.NoError(t, engine.Reconcile(context.Background()))
	assert.ElementsMatch(t, []string{"library", "user_playlists", "user_folders", "history"}, writes)
}

func TestReconcile_LocalHistoryWinsOnlyWhenCloudEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, local, _ := newTestEngine(t, ctrl, testUser())

	records.EXPECT().
		GetFirst(gomock.Any(), baas.UserDataCollection, gomock.Any(), gomock.Any()).
		DoAndReturn(returnRecord(models.UserRecord{ID: "rec1", UserID: "u1", History: "[]"}))

	for _, bucket := range store.Buckets {
		if bucket == store.BucketHistoryTracks {
			local.EXPECT().GetAll(gomock.Any(), bucket).Return([]models.Item{
				{"id": "h1"}, {"id": "h2"},
			}, nil)
			continue
		}
		local.EXPECT().GetAll(gomock.Any(), bucket).Return(nil, nil)
	}

	records.EXPECT().
		Update(gomock.Any(), baas.UserDataCollection, "rec1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body, out any) error {
			if field, ok := body.(map[string]any)["history"]; ok {
				var decoded []any
				requireJSONUnmarshal(t, field.(string), &decoded)
				require.Len(t, decoded, 2)
				assert.Equal(t, "h1", decoded[0].(map[string]any)["id"])
			}
			*out.(*models.UserRecord) = models.UserRecord{ID: "rec1", UserID: "u1"}
			return nil
		}).
		Times(4)

	local.EXPECT().ImportData(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, engine.Reconcile(context.Background()))
}

func TestReconcile_NoUpdateWhenNothingChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, local, _ := newTestEngine(t, ctrl, testUser())

	records.EXPECT().
		GetFirst(gomock.Any(), baas.UserDataCollection, gomock.Any(), gomock.Any()).
		DoAndReturn(returnRecord(models.UserRecord{ID: "rec1", UserID: "u1"}))
	expectEmptyBuckets(local)

	// No Update expectations: an unchanged state is never written back.
	local.EXPECT().ImportData(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, engine.Reconcile(context.Background()))
}

func TestReconcile_SignedOutDropsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, _, _, ids := newTestEngine(t, ctrl, nil)

	ids.user = nil
	require.NoError(t, engine.Reconcile(context.Background()))
}

func TestReconcile_ConcurrentTriggerDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, records, local, _ := newTestEngine(t, ctrl, testUser())

	started := make(chan struct{})
	release := make(chan struct{})

	// Exactly one fetch, one import: the concurrent trigger performs no work.
	records.EXPECT().
		GetFirst(gomock.Any(), baas.UserDataCollection, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ baas.Filter, out any) error {
			close(started)
			<-release
			*out.(*models.UserRecord) = models.UserRecord{ID: "rec1", UserID: "u1"}
			return nil
		}).
		Times(1)
	expectEmptyBuckets(local)
	local.EXPECT().ImportData(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		firstErr = engine.Reconcile(context.Background())
	}()

	<-started

	// Dropped silently while the first run is still in flight.
	require.NoError(t, engine.Reconcile(context.Background()))

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
}

func TestReconcile_EmitsChangeEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := mock.NewMockRecordAPI(ctrl)
	local := mock.NewMockLibraryStore(ctrl)

	var events []ChangeEvent
	engine := NewSyncEngine(records, &stubIdentity{user: testUser()}, local,
		func(e ChangeEvent) { events = append(events, e) }, logger.Nop()).(*syncEngine)

	records.EXPECT().
		GetFirst(gomock.Any(), baas.UserDataCollection, gomock.Any(), gomock.Any()).
		DoAndReturn(returnRecord(models.UserRecord{ID: "rec1", UserID: "u1"}))
	expectEmptyBuckets(local)
	local.EXPECT().ImportData(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, engine.Reconcile(context.Background()))
	assert.Equal(t, []ChangeEvent{EventLibraryChanged, EventHistoryChanged}, events)
}
