package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/jsonx"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/models"
)

// shareThumbnailLimit bounds the fallback thumbnail strip built from track
// album covers.
const shareThumbnailLimit = 4

func (e *syncEngine) PublishPlaylist(ctx context.Context, playlist models.Item) error {
	user := e.ids.Current()
	if user == nil {
		return nil
	}

	id := models.StringField(playlist, "id")
	if id == "" {
		return ErrMissingPlaylistID
	}

	name := models.StringField(playlist, "name")
	cover := models.StringField(playlist, "cover")
	description := models.StringField(playlist, "description")

	tracks := models.SliceField(playlist, "tracks")
	if tracks == nil {
		tracks = []any{}
	}
	serializedTracks, err := canonicalJSON(tracks)
	if err != nil {
		return fmt.Errorf("serialize playlist tracks: %w", err)
	}

	body := map[string]any{
		"uuid":           id,
		"user_id":        user.ID,
		"title":          name,
		"name":           name,
		"playlist_name":  name,
		"image":          cover,
		"cover":          cover,
		"playlist_cover": cover,
		"description":    description,
		"tracks":         serializedTracks,
		"is_public":      true,
		"data": map[string]any{
			"title":       name,
			"cover":       cover,
			"description": description,
		},
	}

	var existing models.PublicPlaylistRecord
	err = e.records.GetFirst(ctx, baas.PublicPlaylistsCollection, baas.Equal("uuid", id), &existing)
	switch {
	case err == nil:
		if err = e.records.Update(ctx, baas.PublicPlaylistsCollection, existing.ID, body, nil); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "syncEngine.PublishPlaylist").
				Str("uuid", id).
				Msg("failed to update public playlist")
			return fmt.Errorf("update public playlist: %w", err)
		}
	case errors.Is(err, baas.ErrNotFound):
		if err = e.records.Create(ctx, baas.PublicPlaylistsCollection, body, nil); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "syncEngine.PublishPlaylist").
				Str("uuid", id).
				Msg("failed to create public playlist")
			return fmt.Errorf("create public playlist: %w", err)
		}
	default:
		return fmt.Errorf("look up public playlist: %w", err)
	}

	return nil
}

func (e *syncEngine) UnpublishPlaylist(ctx context.Context, uuid string) error {
	user := e.ids.Current()
	if user == nil {
		return nil
	}

	var existing models.PublicPlaylistRecord
	err := e.records.GetFirst(ctx, baas.PublicPlaylistsCollection, baas.Equal("uuid", uuid), &existing)
	if errors.Is(err, baas.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up public playlist: %w", err)
	}

	if err = e.records.Delete(ctx, baas.PublicPlaylistsCollection, existing.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncEngine.UnpublishPlaylist").
			Str("uuid", uuid).
			Msg("failed to unpublish playlist")
		return fmt.Errorf("delete public playlist: %w", err)
	}

	return nil
}

func (e *syncEngine) FetchPublicPlaylist(ctx context.Context, uuid string) (*models.PublicPlaylistView, error) {
	var record models.PublicPlaylistRecord
	err := e.records.GetFirst(ctx, baas.PublicPlaylistsCollection, baas.Equal("uuid", uuid), &record)
	if errors.Is(err, baas.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch public playlist: %w", err)
	}

	extra := asItem(jsonx.Decode(record.Data, map[string]any{}))

	rawCover := firstNonEmpty(record.Image, record.Cover, record.PlaylistCover)
	if rawCover == "" && extra != nil {
		rawCover = models.FirstStringField(extra, "cover", "image")
	}

	cover := rawCover
	if rawCover != "" && !strings.HasPrefix(rawCover, "http") && !strings.HasPrefix(rawCover, "data:") {
		cover = e.records.FileURL(baas.PublicPlaylistsCollection, record.ID, rawCover)
	}

	tracks := models.ItemSlice(asSlice(jsonx.Decode(record.Tracks, []any{})))

	var images []string
	if cover == "" && len(tracks) > 0 {
		images = albumCoverThumbnails(tracks)
	}

	title := firstNonEmpty(record.Title, record.Name, record.PlaylistName)
	if title == "" && extra != nil {
		title = models.FirstStringField(extra, "title", "name")
	}
	if title == "" {
		title = models.DefaultPlaylistTitle
	}

	description := record.Description
	if description == "" && extra != nil {
		description = models.StringField(extra, "description")
	}

	return &models.PublicPlaylistView{
		ID:             record.UUID,
		UUID:           record.UUID,
		Title:          title,
		Name:           title,
		Description:    description,
		Cover:          cover,
		Image:          cover,
		Tracks:         tracks,
		Images:         images,
		NumberOfTracks: len(tracks),
		Type:           models.PublicPlaylistType,
		IsPublic:       true,
		OwnerName:      models.CommunityOwnerName,
	}, nil
}

func (e *syncEngine) ClearCloudData(ctx context.Context) error {
	user := e.ids.Current()
	if user == nil {
		return ErrNotSignedIn
	}

	record := e.getUserRecord(ctx, user.ID)
	if record == nil {
		return ErrNoUserRecord
	}

	if err := e.records.Delete(ctx, baas.UserDataCollection, record.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncEngine.ClearCloudData").
			Str("user_id", user.ID).
			Msg("failed to clear cloud data")
		return fmt.Errorf("delete user record: %w", err)
	}

	e.InvalidateCache()
	return nil
}

// albumCoverThumbnails collects up to shareThumbnailLimit distinct album
// covers from the track list, preserving track order.
func albumCoverThumbnails(tracks []models.Item) []string {
	seen := make(map[string]struct{}, shareThumbnailLimit)
	covers := make([]string, 0, shareThumbnailLimit)

	for _, track := range tracks {
		album := models.MapField(track, "album")
		if album == nil {
			continue
		}
		cover := models.StringField(album, "cover")
		if cover == "" {
			continue
		}
		if _, ok := seen[cover]; ok {
			continue
		}
		seen[cover] = struct{}{}
		covers = append(covers, cover)
		if len(covers) >= shareThumbnailLimit {
			break
		}
	}

	return covers
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
