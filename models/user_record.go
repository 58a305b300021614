package models

// UserRecord is the remote per-user document stored in the db_users
// collection. At most one record exists per UserID. The four data fields are
// stored as free-form JSON text on the server and may arrive either as raw
// strings or as already-structured values, so they are typed as any and
// decoded tolerantly by the sync engine.
type UserRecord struct {
	// ID is the server-assigned record id used for updates and deletes.
	ID string `json:"id"`

	// UserID is the opaque auth identity the record belongs to. Unique.
	UserID string `json:"user_id"`

	// Library holds category → item-id → minified item.
	Library any `json:"library"`

	// History holds the bounded play history, newest first.
	History any `json:"history"`

	// UserPlaylists holds playlist-id → playlist snapshot.
	UserPlaylists any `json:"user_playlists"`

	// UserFolders holds folder-id → folder snapshot.
	UserFolders any `json:"user_folders"`
}

// UserRecordField names one of the independently updatable JSON fields of a
// UserRecord. Partial writes always target exactly one field, never the
// whole record.
type UserRecordField string

const (
	FieldLibrary       UserRecordField = "library"
	FieldHistory       UserRecordField = "history"
	FieldUserPlaylists UserRecordField = "user_playlists"
	FieldUserFolders   UserRecordField = "user_folders"
)

// UserData is the decoded view of a UserRecord's four data fields.
type UserData struct {
	Library       Library
	History       History
	UserPlaylists ItemMap
	UserFolders   ItemMap
}

// HistoryLimit caps the play history length; older entries are dropped.
const HistoryLimit = 100
