package service

import (
	"context"

	"github.com/samidy/monosync/internal/jsonx"
	"github.com/samidy/monosync/models"
)

func (e *syncEngine) SyncLibraryItem(ctx context.Context, category string, item models.Item, added bool) error {
	user := e.ids.Current()
	if user == nil {
		return nil
	}

	record := e.getUserRecord(ctx, user.ID)
	if record == nil {
		return nil
	}

	library := asLibrary(jsonx.Decode(record.Library, map[string]any{}))

	plural := models.PluralCategory(category)
	key := models.ItemKey(category, item)

	if library[plural] == nil {
		library[plural] = make(map[string]models.Item)
	}

	if added {
		library[plural][key] = MinifyItem(category, item)
	} else {
		delete(library[plural], key)
	}

	return e.updateField(ctx, user.ID, models.FieldLibrary, library)
}

func (e *syncEngine) SyncHistoryEntry(ctx context.Context, entry models.Item) error {
	user := e.ids.Current()
	if user == nil {
		return nil
	}

	record := e.getUserRecord(ctx, user.ID)
	if record == nil {
		return nil
	}

	history := asHistory(jsonx.Decode(record.History, []any{}))

	updated := make(models.History, 0, len(history)+1)
	updated = append(updated, entry)
	updated = append(updated, history...)
	if len(updated) > models.HistoryLimit {
		updated = updated[:models.HistoryLimit]
	}

	return e.updateField(ctx, user.ID, models.FieldHistory, updated)
}

func (e *syncEngine) SyncUserPlaylist(ctx context.Context, playlist models.Item, remove bool) error {
	user := e.ids.Current()
	if user == nil {
		return nil
	}

	record := e.getUserRecord(ctx, user.ID)
	if record == nil {
		return nil
	}

	id := models.StringField(playlist, "id")
	if id == "" {
		return ErrMissingPlaylistID
	}

	playlists := asItemMap(jsonx.Decode(record.UserPlaylists, map[string]any{}))

	if remove {
		delete(playlists, id)
		if err := e.UnpublishPlaylist(ctx, id); err != nil {
			return err
		}
	} else {
		playlists[id] = snapshotUserPlaylist(playlist)

		if models.BoolField(playlist, "isPublic") {
			if err := e.PublishPlaylist(ctx, playlist); err != nil {
				return err
			}
		}
	}

	return e.updateField(ctx, user.ID, models.FieldUserPlaylists, playlists)
}

func (e *syncEngine) SyncUserFolder(ctx context.Context, folder models.Item, remove bool) error {
	user := e.ids.Current()
	if user == nil {
		return nil
	}

	record := e.getUserRecord(ctx, user.ID)
	if record == nil {
		return nil
	}

	id := models.StringField(folder, "id")
	if id == "" {
		return ErrMissingPlaylistID
	}

	folders := asItemMap(jsonx.Decode(record.UserFolders, map[string]any{}))

	if remove {
		delete(folders, id)
	} else {
		folders[id] = snapshotUserFolder(folder)
	}

	return e.updateField(ctx, user.ID, models.FieldUserFolders, folders)
}

// snapshotUserPlaylist condenses a user-created playlist into the shape kept
// in the cloud record: track entries are minified, counters precomputed.
func snapshotUserPlaylist(playlist models.Item) models.Item {
	tracks := models.ItemSlice(models.SliceField(playlist, "tracks"))
	minTracks := make([]any, 0, len(tracks))
	for _, t := range tracks {
		minTracks = append(minTracks, MinifyItem(models.CategoryTrack, t))
	}

	images := models.SliceField(playlist, "images")
	if images == nil {
		images = []any{}
	}

	return models.Item{
		"id":             playlist["id"],
		"name":           playlist["name"],
		"cover":          fieldOrNil(playlist, "cover"),
		"tracks":         minTracks,
		"createdAt":      timestampOrNow(playlist, "createdAt"),
		"updatedAt":      timestampOrNow(playlist, "updatedAt"),
		"numberOfTracks": len(tracks),
		"images":         images,
		"isPublic":       models.BoolField(playlist, "isPublic"),
	}
}

func snapshotUserFolder(folder models.Item) models.Item {
	playlists := models.SliceField(folder, "playlists")
	if playlists == nil {
		playlists = []any{}
	}

	return models.Item{
		"id":        folder["id"],
		"name":      folder["name"],
		"cover":     fieldOrNil(folder, "cover"),
		"playlists": playlists,
		"createdAt": timestampOrNow(folder, "createdAt"),
		"updatedAt": timestampOrNow(folder, "updatedAt"),
	}
}

func timestampOrNow(item models.Item, key string) any {
	if v, ok := item[key]; ok && v != nil {
		return v
	}
	return nowMillis()
}
