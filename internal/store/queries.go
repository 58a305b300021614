package store

import (
	sq "github.com/Masterminds/squirrel"
)

const libraryTable = "library_items"

// buildSelectBucketQuery selects every payload of a bucket in positional
// order.
func buildSelectBucketQuery(bucket string) (string, []any, error) {
	return sq.Select("payload").
		From(libraryTable).
		Where(sq.Eq{"bucket": bucket}).
		OrderBy("position ASC").
		ToSql()
}

// buildUpsertItemQuery inserts an item at the end of the bucket, or
// overwrites its payload in place when the key already exists.
func buildUpsertItemQuery(bucket, key string, payload []byte) (string, []any, error) {
	position := sq.Expr(
		`COALESCE(
			(SELECT position FROM library_items WHERE bucket = ? AND item_key = ?),
			(SELECT COALESCE(MAX(position), -1) + 1 FROM library_items WHERE bucket = ?)
		)`,
		bucket, key, bucket,
	)

	return sq.Insert(libraryTable).
		Columns("bucket", "item_key", "position", "payload").
		Values(bucket, key, position, payload).
		Suffix("ON CONFLICT(bucket, item_key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

// buildInsertItemQuery inserts an item at an explicit position. Used when a
// bucket is rebuilt inside a transaction.
func buildInsertItemQuery(bucket, key string, position int, payload []byte) (string, []any, error) {
	return sq.Insert(libraryTable).
		Columns("bucket", "item_key", "position", "payload").
		Values(bucket, key, position, payload).
		ToSql()
}

func buildDeleteItemQuery(bucket, key string) (string, []any, error) {
	return sq.Delete(libraryTable).
		Where(sq.Eq{"bucket": bucket, "item_key": key}).
		ToSql()
}

func buildDeleteBucketQuery(bucket string) (string, []any, error) {
	return sq.Delete(libraryTable).
		Where(sq.Eq{"bucket": bucket}).
		ToSql()
}
