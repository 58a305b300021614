// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/samidy/monosync/internal/identity"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/service"
)

// AuthSyncWorker reacts to auth-state changes: a sign-in triggers a full
// reconcile of the local library against the cloud record, a sign-out drops
// the cached record so the next session starts clean.
type AuthSyncWorker struct {
	events <-chan identity.Event
	engine service.SyncEngine
	logger *logger.Logger
}

func NewAuthSyncWorker(events <-chan identity.Event, engine service.SyncEngine, log *logger.Logger) *AuthSyncWorker {
	return &AuthSyncWorker{
		events: events,
		engine: engine,
		logger: log,
	}
}

// Run starts the event loop in a background goroutine and returns
// immediately. The loop lives for the process lifetime.
func (w *AuthSyncWorker) Run() {
	go w.loop()
}

func (w *AuthSyncWorker) loop() {
	for event := range w.events {
		if event.User == nil {
			w.engine.InvalidateCache()
			w.logger.Debug().Str("func", "AuthSyncWorker.loop").Msg("signed out, cloud record cache dropped")
			continue
		}

		ctx := w.logger.WithContext(context.Background())
		if err := w.engine.Reconcile(ctx); err != nil {
			w.logger.Err(err).Str("func", "AuthSyncWorker.loop").Msg("post-sign-in reconcile failed")
		}
	}
}
