package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/jsonx"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/store"
	"github.com/samidy/monosync/models"
)

// ChangeEvent names a local-state refresh notification emitted after a
// completed reconciliation.
type ChangeEvent string

const (
	EventLibraryChanged ChangeEvent = "library-changed"
	EventHistoryChanged ChangeEvent = "history-changed"
)

type syncEngine struct {
	records  baas.RecordAPI
	ids      IdentitySource
	local    store.LibraryStore
	onChange func(ChangeEvent)
	logger   *logger.Logger

	// cache holds at most one cloud record, for the identity it was
	// fetched for. Guarded by mu; dropped on identity mismatch, sign-out
	// and ClearCloudData.
	mu    sync.Mutex
	cache *models.UserRecord

	syncing atomic.Bool
}

// NewSyncEngine wires a [SyncEngine] over the record service, the identity
// source and the local offline store. onChange may be nil.
func NewSyncEngine(records baas.RecordAPI, ids IdentitySource, local store.LibraryStore, onChange func(ChangeEvent), log *logger.Logger) SyncEngine {
	return &syncEngine{
		records:  records,
		ids:      ids,
		local:    local,
		onChange: onChange,
		logger:   log,
	}
}

func (e *syncEngine) notify(event ChangeEvent) {
	if e.onChange != nil {
		e.onChange(event)
	}
}

func (e *syncEngine) InvalidateCache() {
	e.mu.Lock()
	e.cache = nil
	e.mu.Unlock()
}

func (e *syncEngine) setCache(record *models.UserRecord) {
	e.mu.Lock()
	e.cache = record
	e.mu.Unlock()
}

func (e *syncEngine) cached(userID string) *models.UserRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cache != nil && e.cache.UserID == userID {
		return e.cache
	}
	e.cache = nil
	return nil
}

// getUserRecord returns the cloud record for userID, fetching it or lazily
// creating an empty one on first access. Remote failures are logged and
// yield nil, never an error: sync operations degrade to no-ops while the
// record service is unreachable.
func (e *syncEngine) getUserRecord(ctx context.Context, userID string) *models.UserRecord {
	if userID == "" {
		return nil
	}

	if record := e.cached(userID); record != nil {
		return record
	}

	log := logger.FromContext(ctx)

	var record models.UserRecord
	err := e.records.GetFirst(ctx, baas.UserDataCollection, baas.Equal("user_id", userID), &record)
	if err == nil {
		e.setCache(&record)
		return &record
	}

	if !errors.Is(err, baas.ErrNotFound) {
		log.Err(err).
			Str("func", "syncEngine.getUserRecord").
			Str("user_id", userID).
			Msg("failed to get user record")
		return nil
	}

	created := models.UserRecord{}
	createErr := e.records.Create(ctx, baas.UserDataCollection, map[string]any{
		"user_id":        userID,
		"library":        "{}",
		"history":        "[]",
		"user_playlists": "{}",
		"user_folders":   "{}",
	}, &created)
	if createErr != nil {
		log.Err(createErr).
			Str("func", "syncEngine.getUserRecord").
			Str("user_id", userID).
			Msg("failed to create user record")
		return nil
	}

	e.setCache(&created)
	return &created
}

// updateField writes a single data field of the cloud record, leaving the
// others untouched, and refreshes the cache with the server's response.
func (e *syncEngine) updateField(ctx context.Context, userID string, field models.UserRecordField, data any) error {
	record := e.getUserRecord(ctx, userID)
	if record == nil {
		logger.FromContext(ctx).Error().
			Str("func", "syncEngine.updateField").
			Str("field", string(field)).
			Msg("cannot update: no user record found")
		return ErrNoUserRecord
	}

	payload, err := canonicalJSON(data)
	if err != nil {
		return fmt.Errorf("serialize %s field: %w", field, err)
	}

	var updated models.UserRecord
	if err = e.records.Update(ctx, baas.UserDataCollection, record.ID, map[string]any{string(field): payload}, &updated); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncEngine.updateField").
			Str("field", string(field)).
			Msg("failed to sync field")
		return fmt.Errorf("sync %s field: %w", field, err)
	}

	e.setCache(&updated)
	return nil
}

func (e *syncEngine) ReadUserData(ctx context.Context) (*models.UserData, error) {
	user := e.ids.Current()
	if user == nil {
		return nil, nil
	}

	record := e.getUserRecord(ctx, user.ID)
	if record == nil {
		return nil, nil
	}

	return decodeUserData(record), nil
}

// decodeUserData tolerantly decodes the four free-form data fields of the
// cloud record into their structured views.
func decodeUserData(record *models.UserRecord) *models.UserData {
	return &models.UserData{
		Library:       asLibrary(jsonx.Decode(record.Library, map[string]any{})),
		History:       asHistory(jsonx.Decode(record.History, []any{})),
		UserPlaylists: asItemMap(jsonx.Decode(record.UserPlaylists, map[string]any{})),
		UserFolders:   asItemMap(jsonx.Decode(record.UserFolders, map[string]any{})),
	}
}

// canonicalJSON serializes data for a record field write. Strings pass
// through untouched so already-serialized payloads are never double-encoded.
func canonicalJSON(data any) (string, error) {
	if s, ok := data.(string); ok {
		return s, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func asItem(v any) models.Item {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

func asLibrary(v any) models.Library {
	m, ok := v.(map[string]any)
	if !ok {
		return models.EnsureLibrary(nil)
	}

	lib := make(models.Library, len(m))
	for category, raw := range m {
		bucket, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		items := make(map[string]models.Item, len(bucket))
		for id, entry := range bucket {
			if item := asItem(entry); item != nil {
				items[id] = item
			}
		}
		lib[category] = items
	}

	return models.EnsureLibrary(lib)
}

func asHistory(v any) models.History {
	raw, ok := v.([]any)
	if !ok {
		return models.History{}
	}
	return models.History(models.ItemSlice(raw))
}

func asItemMap(v any) models.ItemMap {
	m, ok := v.(map[string]any)
	if !ok {
		return models.ItemMap{}
	}

	out := make(models.ItemMap, len(m))
	for id, entry := range m {
		if item := asItem(entry); item != nil {
			out[id] = item
		}
	}
	return out
}
