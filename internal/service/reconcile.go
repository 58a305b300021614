// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/store"
	"github.com/samidy/monosync/models"
)

// favoriteBuckets pairs each catalog category with its local storage bucket.
var favoriteBuckets = []struct {
	category string
	bucket   string
}{
	{models.CategoryTrack, store.BucketFavoritesTracks},
	{models.CategoryAlbum, store.BucketFavoritesAlbums},
	{models.CategoryArtist, store.BucketFavoritesArtists},
	{models.CategoryPlaylist, store.BucketFavoritesPlaylists},
	{models.CategoryMix, store.BucketFavoritesMixes},
}

// Reconcile merges the local offline library into the cloud record and
// imports the merged state back. Cloud entries always win: local items are
// only inserted where the cloud has no entry under the same key, and the
// local history replaces the cloud history only when the cloud one is empty.
// A reconcile already in flight causes the new trigger to be dropped.
func (e *syncEngine) Reconcile(ctx context.Context) error {
	log := logger.FromContext(ctx)

	user := e.ids.Current()
	if user == nil {
		e.InvalidateCache()
		return nil
	}

	if !e.syncing.CompareAndSwap(false, true) {
		log.Debug().
			Str("func", "syncEngine.Reconcile").
			Msg("reconcile already in progress, dropping trigger")
		return nil
	}
	defer e.syncing.Store(false)

	data, err := e.ReadUserData(ctx)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}

	local, err := e.loadLocalData(ctx)
	if err != nil {
		return err
	}

	library := models.EnsureLibrary(data.Library)
	userPlaylists := data.UserPlaylists
	if userPlaylists == nil {
		userPlaylists = models.ItemMap{}
	}
	userFolders := data.UserFolders
	if userFolders == nil {
		userFolders = models.ItemMap{}
	}
	history := data.History

	needsUpdate := false

	for _, fav := range favoriteBuckets {
		plural := models.PluralCategory(fav.category)
		for _, item := range local[fav.bucket] {
			key := models.ItemKey(fav.category, item)
			if key == "" {
				continue
			}
			if _, ok := library[plural][key]; !ok {
				library[plural][key] = MinifyItem(fav.category, item)
				needsUpdate = true
			}
		}
	}

	for _, playlist := range local[store.BucketUserPlaylists] {
		id := models.StringField(playlist, "id")
		if id == "" {
			continue
		}
		if _, ok := userPlaylists[id]; !ok {
			userPlaylists[id] = snapshotUserPlaylist(playlist)
			needsUpdate = true
		}
	}

	for _, folder := range local[store.BucketUserFolders] {
		id := models.StringField(folder, "id")
		if id == "" {
			continue
		}
		if _, ok := userFolders[id]; !ok {
			userFolders[id] = snapshotUserFolder(folder)
			needsUpdate = true
		}
	}

	if len(history) == 0 && len(local[store.BucketHistoryTracks]) > 0 {
		history = models.History(local[store.BucketHistoryTracks])
		needsUpdate = true
	}

	if needsUpdate {
		if err = e.updateField(ctx, user.ID, models.FieldLibrary, library); err != nil {
			return err
		}
		if err = e.updateField(ctx, user.ID, models.FieldUserPlaylists, userPlaylists); err != nil {
			return err
		}
		if err = e.updateField(ctx, user.ID, models.FieldUserFolders, userFolders); err != nil {
			return err
		}
		if err = e.updateField(ctx, user.ID, models.FieldHistory, history); err != nil {
			return err
		}
	}

	merged := map[string][]models.Item{
		store.BucketFavoritesTracks:    sortedValues(library[models.PluralCategory(models.CategoryTrack)]),
		store.BucketFavoritesAlbums:    sortedValues(library[models.PluralCategory(models.CategoryAlbum)]),
		store.BucketFavoritesArtists:   sortedValues(library[models.PluralCategory(models.CategoryArtist)]),
		store.BucketFavoritesPlaylists: sortedValues(library[models.PluralCategory(models.CategoryPlaylist)]),
		store.BucketFavoritesMixes:     sortedValues(library[models.PluralCategory(models.CategoryMix)]),
		store.BucketHistoryTracks:      []models.Item(history),
		store.BucketUserPlaylists:      sortedValues(userPlaylists),
		store.BucketUserFolders:        sortedValues(userFolders),
	}

	if err = e.local.ImportData(ctx, merged); err != nil {
		return fmt.Errorf("import merged data locally: %w", err)
	}

	e.notify(EventLibraryChanged)
	e.notify(EventHistoryChanged)

	log.Info().
		Str("func", "syncEngine.Reconcile").
		Str("user_id", user.ID).
		Bool("cloud_updated", needsUpdate).
		Msg("sync completed")

	return nil
}

func (e *syncEngine) loadLocalData(ctx context.Context) (map[string][]models.Item, error) {
	local := make(map[string][]models.Item, len(store.Buckets))
	for _, bucket := range store.Buckets {
		items, err := e.local.GetAll(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("load local bucket %s: %w", bucket, err)
		}
		local[bucket] = items
	}
	return local, nil
}

// sortedValues flattens an id-keyed item map into a key-ordered slice so
// that imports are deterministic.
func sortedValues[M ~map[string]models.Item](m M) []models.Item {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]models.Item, 0, len(keys))
	for _, k := range keys {
		if m[k] != nil {
			items = append(items, m[k])
		}
	}
	return items
}
