package config

import (
	"fmt"
	"time"
)

// GateConfig is the session gate view of the merged configuration.
type GateConfig struct {
	// Enabled toggles the authentication gate.
	Enabled bool
	// HTTPAddress is the gate listen address.
	HTTPAddress string
	// RemoteBaseURL is the record service used for token verification.
	RemoteBaseURL string
	// RequestTimeout bounds verification calls to the record service.
	RequestTimeout time.Duration
	// AuthSecret signs session cookies. Required when Enabled.
	AuthSecret string
	// SessionMaxAge is the session cookie lifetime.
	SessionMaxAge time.Duration
	// CookieName is the session cookie name.
	CookieName string
	// DistDir holds the pre-rendered pages served behind the gate.
	DistDir string
}

// GetGateConfig builds and validates the gate-specific config view from the
// merged structured configuration, applying defaults for optional fields.
//
// Returns [ErrMissingAuthSecret] when the gate is enabled without a signing
// secret; callers must treat that as a fatal startup error.
func GetGateConfig() (*GateConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	gateCfg := &GateConfig{
		Enabled:        cfg.Gate.Enabled,
		HTTPAddress:    cfg.Gate.HTTPAddress,
		RemoteBaseURL:  cfg.Remote.BaseURL,
		RequestTimeout: cfg.Remote.RequestTimeout,
		AuthSecret:     cfg.Gate.AuthSecret,
		SessionMaxAge:  cfg.Gate.SessionMaxAge,
		CookieName:     cfg.Gate.CookieName,
		DistDir:        cfg.Gate.DistDir,
	}
	gateCfg.applyDefaults()

	return gateCfg, gateCfg.validate()
}

func (cfg *GateConfig) applyDefaults() {
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = DefaultGateAddress
	}
	if cfg.RemoteBaseURL == "" {
		cfg.RemoteBaseURL = DefaultRemoteBaseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.SessionMaxAge == 0 {
		cfg.SessionMaxAge = DefaultSessionMaxAge
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.DistDir == "" {
		cfg.DistDir = DefaultDistDir
	}
}

func (cfg *GateConfig) validate() error {
	if cfg.Enabled && cfg.AuthSecret == "" {
		return ErrMissingAuthSecret
	}

	if cfg.RemoteBaseURL == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	return nil
}
