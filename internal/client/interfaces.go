// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract implemented by the sync client
// application. Run starts the background workers and the terminal UI and
// blocks until the user quits or a fatal error occurs.
type Client interface {
	Run() error
}
