package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep a readable config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Remote struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		AdminEmail     string   `json:"admin_email"`
		AdminPassword  string   `json:"admin_password"`
	} `json:"remote,omitempty"`

	Gate struct {
		Enabled       bool     `json:"enabled"`
		HTTPAddress   string   `json:"address"`
		AuthSecret    string   `json:"auth_secret"`
		SessionMaxAge Duration `json:"session_max_age"`
		CookieName    string   `json:"cookie_name"`
		DistDir       string   `json:"dist_dir"`
	} `json:"gate,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			AdminEmail:     jsonCfg.Remote.AdminEmail,
			AdminPassword:  jsonCfg.Remote.AdminPassword,
		},
		Gate: Gate{
			Enabled:       jsonCfg.Gate.Enabled,
			HTTPAddress:   jsonCfg.Gate.HTTPAddress,
			AuthSecret:    jsonCfg.Gate.AuthSecret,
			SessionMaxAge: time.Duration(jsonCfg.Gate.SessionMaxAge),
			CookieName:    jsonCfg.Gate.CookieName,
			DistDir:       jsonCfg.Gate.DistDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
