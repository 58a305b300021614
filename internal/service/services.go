package service

import (
	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/store"
)

// ClientServices groups the client-side services into a single value that
// can be passed around the workers and the TUI.
type ClientServices struct {
	Engine SyncEngine
}

// NewClientServices wires the sync engine over the record service client,
// the identity source and the local storages.
func NewClientServices(storages *store.ClientStorages, records baas.RecordAPI, ids IdentitySource, onChange func(ChangeEvent), log *logger.Logger) *ClientServices {
	return &ClientServices{
		Engine: NewSyncEngine(records, ids, storages.Library, onChange, log),
	}
}
