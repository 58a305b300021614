package config

import "errors"

// Validation errors returned by the config views when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingAuthSecret indicates the gate is enabled but no session
	// cookie signing secret was provided. This is fatal at startup.
	ErrMissingAuthSecret = errors.New("auth secret is required when the gate is enabled")
	// ErrInvalidRemoteConfigs indicates invalid record service settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
