package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/models"
)

type libraryRepository struct {
	*DB
	logger *logger.Logger
}

func NewLibraryRepository(db *DB, logger *logger.Logger) LibraryStore {
	return &libraryRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *libraryRepository) GetAll(ctx context.Context, bucket string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	if !knownBucket(bucket) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}

	query, args, err := buildSelectBucketQuery(bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "libraryRepository.GetAll").
			Str("bucket", bucket).
			Msg("failed to execute query for getting bucket items")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Item

	for rows.Next() {
		var payload []byte
		if scanErr := rows.Scan(&payload); scanErr != nil {
			log.Err(scanErr).
				Str("func", "libraryRepository.GetAll").
				Str("bucket", bucket).
				Msg("failed to scan library item row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, scanErr)
		}

		var item models.Item
		if decodeErr := json.Unmarshal(payload, &item); decodeErr != nil {
			return nil, fmt.Errorf("decode library item payload: %w", decodeErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "libraryRepository.GetAll").
			Str("bucket", bucket).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (l *libraryRepository) ReplaceBucket(ctx context.Context, bucket string, items []models.Item) error {
	log := logger.FromContext(ctx)

	if !knownBucket(bucket) {
		return fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "libraryRepository.ReplaceBucket").
			Str("bucket", bucket).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = replaceBucketTx(ctx, tx, bucket, items); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "libraryRepository.ReplaceBucket").
			Str("bucket", bucket).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %v", ErrCommittingTransaction, err)
	}

	return nil
}

func (l *libraryRepository) UpsertItem(ctx context.Context, bucket string, item models.Item) error {
	log := logger.FromContext(ctx)

	if !knownBucket(bucket) {
		return fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode library item payload: %w", err)
	}

	key := itemKey(bucket, item, 0)
	query, args, err := buildUpsertItemQuery(bucket, key, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "libraryRepository.UpsertItem").
			Str("bucket", bucket).
			Str("item_key", key).
			Msg("failed to execute upsert for library item")
		return fmt.Errorf("failed to save library item (key=%s): %w", key, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return fmt.Errorf("%w: key=%s", ErrItemNotSaved, key)
	}

	return nil
}

func (l *libraryRepository) DeleteItem(ctx context.Context, bucket, key string) error {
	log := logger.FromContext(ctx)

	if !knownBucket(bucket) {
		return fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}

	query, args, err := buildDeleteItemQuery(bucket, key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "libraryRepository.DeleteItem").
			Str("bucket", bucket).
			Str("item_key", key).
			Msg("failed to execute delete for library item")
		return fmt.Errorf("failed to delete library item (key=%s): %w", key, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return fmt.Errorf("%w: key=%s", ErrItemNotFound, key)
	}

	return nil
}

func (l *libraryRepository) ImportData(ctx context.Context, data map[string][]models.Item) error {
	log := logger.FromContext(ctx)

	for bucket := range data {
		if !knownBucket(bucket) {
			return fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
		}
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "libraryRepository.ImportData").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// Stable bucket order keeps import deterministic.
	for _, bucket := range Buckets {
		items, ok := data[bucket]
		if !ok {
			continue
		}
		if err = replaceBucketTx(ctx, tx, bucket, items); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "libraryRepository.ImportData").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %v", ErrCommittingTransaction, err)
	}

	return nil
}

func replaceBucketTx(ctx context.Context, tx txExecutor, bucket string, items []models.Item) error {
	query, args, err := buildDeleteBucketQuery(bucket)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear bucket %s: %w", bucket, err)
	}

	for position, item := range items {
		payload, encErr := json.Marshal(item)
		if encErr != nil {
			return fmt.Errorf("encode library item payload: %w", encErr)
		}

		key := itemKey(bucket, item, position)
		query, args, err = buildInsertItemQuery(bucket, key, position, payload)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert library item (bucket=%s key=%s): %w", bucket, key, err)
		}
	}

	return nil
}

// txExecutor is the subset of *sql.Tx used by bucket rebuilds.
type txExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// itemKey derives the stable row key of an item within a bucket. Playlists
// prefer their client-generated uuid; everything else falls back to the
// catalog id, then to the insertion position.
func itemKey(bucket string, item models.Item, position int) string {
	if bucket == BucketUserPlaylists || bucket == BucketFavoritesPlaylists {
		if key := models.ItemKey(models.CategoryPlaylist, item); key != "" {
			return key
		}
	}

	if key := models.FirstStringField(item, "id", "uuid"); key != "" {
		return key
	}

	return strconv.Itoa(position)
}

func knownBucket(bucket string) bool {
	for _, known := range Buckets {
		if bucket == known {
			return true
		}
	}
	return false
}
