// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for monosync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Remote holds the endpoint settings of the external record service
	// (the Backbase instance) that owns auth and per-user documents.
	Remote Remote `envPrefix:"REMOTE_"`

	// Gate holds the session gate server settings.
	Gate Gate `envPrefix:"GATE_"`

	// Storage holds the local offline library database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ShareBaseURL is the root URL of the web player, used to build share
	// links for public playlists.
	// Env: APP_SHARE_BASE_URL
	ShareBaseURL string `env:"SHARE_BASE_URL"`
}

// Remote holds connection settings for the external record service.
type Remote struct {
	// BaseURL is the root URL of the record service
	// (e.g. "https://monodb.samidy.com").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests to the
	// record service (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AdminEmail and AdminPassword authenticate the schema bootstrap tool
	// against the record service's admin API. Not used at runtime.
	// Env: REMOTE_ADMIN_EMAIL / REMOTE_ADMIN_PASSWORD
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Gate holds settings for the session gate HTTP server.
type Gate struct {
	// Enabled toggles the authentication gate. When false the server passes
	// requests through, still injecting configuration flags into pages.
	// Env: GATE_ENABLED
	Enabled bool `env:"ENABLED"`

	// HTTPAddress is the TCP address the gate listens on, "host:port".
	// Env: GATE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AuthSecret signs the session cookie. Required when Enabled is true;
	// startup aborts without it.
	// Env: GATE_AUTH_SECRET
	AuthSecret string `env:"AUTH_SECRET"`

	// SessionMaxAge bounds the lifetime of a minted session cookie.
	// Env: GATE_SESSION_MAX_AGE
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE"`

	// CookieName is the session cookie name.
	// Env: GATE_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// DistDir is the directory holding the pre-rendered pages
	// (index.html, login.html) served behind the gate.
	// Env: GATE_DIST_DIR
	DistDir string `env:"DIST_DIR"`
}

// Storage groups the configuration for the local offline library store.
type Storage struct {
	// DB holds the embedded database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded SQLite library database.
type DB struct {
	// DSN is the SQLite file path used by the sync client
	// (e.g. "monosync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Defaults applied by the views in config_gate.go and config_client.go when
// neither env, flags, nor the JSON file provide a value.
const (
	DefaultRemoteBaseURL  = "https://monodb.samidy.com"
	DefaultRequestTimeout = 15 * time.Second
	DefaultGateAddress    = ":4173"
	DefaultSessionMaxAge  = 7 * 24 * time.Hour
	DefaultCookieName     = "mono_session"
	DefaultDistDir        = "dist"
	DefaultShareBaseURL   = "https://mono.samidy.com"
)
