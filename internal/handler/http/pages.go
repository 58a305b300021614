package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samidy/monosync/internal/config"
)

const headCloseTag = "</head>"

// pageCache holds the pre-rendered client pages with the configuration
// script already injected. Pages are read once at startup; the dist
// directory is treated as immutable for the process lifetime.
type pageCache struct {
	// index is the injected application shell, nil when index.html is
	// absent from the dist directory.
	index []byte

	// login is the injected login page, nil when login.html is absent.
	login []byte
}

// loadPages reads index.html and login.html from the dist directory and
// injects the configuration script into each. A missing page is not an
// error; requests for it fall back at serve time.
func loadPages(cfg *config.GateConfig) (*pageCache, error) {
	script := configScript(cfg)

	index, err := loadInjectedPage(filepath.Join(cfg.DistDir, "index.html"), script)
	if err != nil {
		return nil, fmt.Errorf("load index page: %w", err)
	}

	login, err := loadInjectedPage(filepath.Join(cfg.DistDir, "login.html"), script)
	if err != nil {
		return nil, fmt.Errorf("load login page: %w", err)
	}

	return &pageCache{index: index, login: login}, nil
}

func loadInjectedPage(path string, script []byte) ([]byte, error) {
	page, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(script) == 0 {
		return page, nil
	}
	return bytes.Replace(page, []byte(headCloseTag), append(append([]byte{}, script...), []byte("\n"+headCloseTag)...), 1), nil
}

// configScript builds the inline script that exposes gate configuration to
// the client. The remote URL is JSON-encoded so it is safe to embed.
func configScript(cfg *config.GateConfig) []byte {
	var flags []string
	if cfg.Enabled {
		flags = append(flags, "window.__AUTH_GATE__=true")
	}
	if cfg.RemoteBaseURL != "" {
		encoded, err := json.Marshal(cfg.RemoteBaseURL)
		if err == nil {
			flags = append(flags, fmt.Sprintf("window.__REMOTE_URL__=%s", encoded))
		}
	}
	if len(flags) == 0 {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString("<script>")
	for i, flag := range flags {
		if i > 0 {
			buf.WriteString(";")
		}
		buf.WriteString(flag)
	}
	buf.WriteString(";</script>")
	return buf.Bytes()
}
