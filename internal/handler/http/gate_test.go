package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samidy/monosync/internal/config"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/mock"
	"github.com/samidy/monosync/internal/utils"
	"github.com/samidy/monosync/models"
)

const testAuthSecret = "gate-test-secret"

func writeDistDir(t *testing.T) string {
	t.Helper()

	dist := t.TempDir()
	pages := map[string]string{
		"index.html": "<html><head><title>monosync</title></head><body>app shell</body></html>",
		"login.html": "<html><head><title>login</title></head><body>login form</body></html>",
		"styles.css": "body { margin: 0; }",
	}
	for name, content := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dist, name), []byte(content), 0644))
	}
	return dist
}

func newTestGate(t *testing.T, enabled bool) (*chi.Mux, *mock.MockTokenVerifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	verifier := mock.NewMockTokenVerifier(ctrl)

	cfg := &config.GateConfig{
		Enabled:       enabled,
		RemoteBaseURL: "https://records.example.com",
		AuthSecret:    testAuthSecret,
		SessionMaxAge: time.Hour,
		CookieName:    "mono_session",
		DistDir:       writeDistDir(t),
	}

	handler, err := NewHandler(verifier, cfg, logger.Nop())
	require.NoError(t, err)

	return handler.Init(), verifier
}

func sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()

	token, err := utils.GenerateSessionToken(sessionIssuer, models.Session{UserID: userID}, time.Hour, testAuthSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: "mono_session", Value: token}
}

func TestHealth_BypassesGate(t *testing.T) {
	router, _ := newTestGate(t, true)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestGate_UnauthenticatedAssetRejected(t *testing.T) {
	router, _ := newTestGate(t, true)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/styles.css", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGate_UnauthenticatedPageRedirectsToLogin(t *testing.T) {
	router, _ := newTestGate(t, true)

	for _, target := range []string{"/", "/dashboard", "/index.html"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusFound, recorder.Code, "path %s", target)
		assert.Equal(t, "/login", recorder.Header().Get("Location"), "path %s", target)
	}
}

func TestGate_ExpiredSessionTreatedAsUnauthenticated(t *testing.T) {
	router, _ := newTestGate(t, true)

	token, err := utils.GenerateSessionToken(sessionIssuer, models.Session{UserID: "u1"}, time.Nanosecond, testAuthSecret)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	request := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	request.AddCookie(&http.Cookie{Name: "mono_session", Value: token})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusFound, recorder.Code)
}

func TestGate_AuthenticatedPageGetsInjectedShell(t *testing.T) {
	router, _ := newTestGate(t, true)

	request := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	request.AddCookie(sessionCookie(t, "u1"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", recorder.Header().Get("Cache-Control"))
	assert.Contains(t, recorder.Body.String(), "app shell")
	assert.Contains(t, recorder.Body.String(), "window.__AUTH_GATE__=true")
	assert.Contains(t, recorder.Body.String(), `window.__REMOTE_URL__="https://records.example.com"`)
}

func TestGate_AuthenticatedAssetServedFromDist(t *testing.T) {
	router, _ := newTestGate(t, true)

	request := httptest.NewRequest(http.MethodGet, "/styles.css", nil)
	request.AddCookie(sessionCookie(t, "u1"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "margin: 0")
}

func TestGate_DisabledPassesThroughWithInjection(t *testing.T) {
	router, _ := newTestGate(t, false)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "app shell")
	assert.NotContains(t, body, "window.__AUTH_GATE__")
	assert.Contains(t, body, `window.__REMOTE_URL__="https://records.example.com"`)
}

func TestGate_DisabledServesAssetsWithoutAuth(t *testing.T) {
	router, _ := newTestGate(t, false)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/styles.css", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func Test_isPageResource(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/", want: true},
		{path: "/dashboard", want: true},
		{path: "/index.html", want: true},
		{path: "/nested/page.HTML", want: true},
		{path: "/styles.css", want: false},
		{path: "/bundle.js", want: false},
		{path: "/img/cover.png", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isPageResource(tt.path))
		})
	}
}

func TestGate_TraceIDHeaderSet(t *testing.T) {
	router, _ := newTestGate(t, true)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, recorder.Header().Get(traceIDHeader))
}

func TestGate_TraceIDHeaderPropagated(t *testing.T) {
	router, _ := newTestGate(t, true)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set(traceIDHeader, "trace-123")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, "trace-123", recorder.Header().Get(traceIDHeader))
}

func TestLoadPages_MissingIndexIsNotFatal(t *testing.T) {
	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "login.html"), []byte("<html><head></head></html>"), 0644))

	pages, err := loadPages(&config.GateConfig{Enabled: true, DistDir: dist})
	require.NoError(t, err)
	assert.Nil(t, pages.index)
	assert.NotNil(t, pages.login)
}

func TestConfigScript_Empty(t *testing.T) {
	script := configScript(&config.GateConfig{})
	assert.Empty(t, script)
}

func TestConfigScript_EscapesRemoteURL(t *testing.T) {
	script := configScript(&config.GateConfig{RemoteBaseURL: `https://x/"</script>`})

	// The URL must be JSON-encoded so a closing tag cannot break out of the
	// script element.
	assert.Contains(t, string(script), `</script>`)
	assert.False(t, strings.Contains(string(script), "</script></script>"))
}
