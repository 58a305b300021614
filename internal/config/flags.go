package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a gate listen address in format [host]:[port]
//	-remote-url base URL of the external record service
//	-gate-enabled enable the authentication gate
//	-auth-secret session cookie signing secret
//	-session-max-age session cookie lifetime (e.g., "168h")
//	-cookie-name session cookie name
//	-dist directory with pre-rendered pages
//	-d local library database path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var gateAddress string
	var remoteURL string
	var gateEnabled bool
	var authSecret string
	var sessionMaxAge time.Duration
	var cookieName string
	var distDir string
	var databaseDSN string
	var jsonConfigPath string

	flag.StringVar(&gateAddress, "a", "", "Gate listen address host:port")
	flag.StringVar(&remoteURL, "remote-url", "", "Record service base URL")
	flag.BoolVar(&gateEnabled, "gate-enabled", false, "Enable the authentication gate")
	flag.StringVar(&authSecret, "auth-secret", "", "Session cookie signing secret")
	flag.DurationVar(&sessionMaxAge, "session-max-age", 0, "Session cookie lifetime (e.g., 168h)")
	flag.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	flag.StringVar(&distDir, "dist", "", "Directory with pre-rendered pages")
	flag.StringVar(&databaseDSN, "d", "", "Local library database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			BaseURL: remoteURL,
		},
		Gate: Gate{
			Enabled:       gateEnabled,
			HTTPAddress:   gateAddress,
			AuthSecret:    authSecret,
			SessionMaxAge: sessionMaxAge,
			CookieName:    cookieName,
			DistDir:       distDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
