// Package tui implements the interactive terminal surface of the sync
// client: a slim account screen with a sign-in form and, once signed in,
// actions for manual sync, share-link copying, cloud data clearing, and
// sign-out.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samidy/monosync/internal/config"
	"github.com/samidy/monosync/internal/identity"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/service"
)

var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services *service.ClientServices
	ids      *identity.Provider
	config   *config.ClientConfig
}

func New(services *service.ClientServices, ids *identity.Provider, cfg *config.ClientConfig, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services: services,
		ids:      ids,
		config:   cfg,
	}, nil
}

// Run drives the account screen until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAccountModel(ctx, t.services, t.ids, t.config.App.ShareBaseURL)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(*accountModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
