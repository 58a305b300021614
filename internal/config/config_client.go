package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings used by the client.
type ClientApp struct {
	// ShareBaseURL is the web player root used to build public playlist
	// share links.
	ShareBaseURL string
}

// ClientRemote holds network settings used by the client transport layer.
type ClientRemote struct {
	// BaseURL is the record service endpoint used by the client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level sync client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Remote contains client transport settings.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ShareBaseURL: cfg.App.ShareBaseURL,
		},
		Remote: ClientRemote{
			BaseURL:        cfg.Remote.BaseURL,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	if clientCfg.App.ShareBaseURL == "" {
		clientCfg.App.ShareBaseURL = DefaultShareBaseURL
	}
	if clientCfg.Remote.BaseURL == "" {
		clientCfg.Remote.BaseURL = DefaultRemoteBaseURL
	}
	if clientCfg.Remote.RequestTimeout == 0 {
		clientCfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = "monosync.db"
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
