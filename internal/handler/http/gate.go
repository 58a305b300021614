package http

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/samidy/monosync/internal/app"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/utils"
)

// serve is the catch-all behind the gate. Unauthenticated requests are
// rejected with 401 for asset resources and redirected to the login page for
// page resources. Authenticated page requests get the injected application
// shell; everything else is served from the dist directory.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, err := h.sessionFromRequest(r)
	if err != nil {
		if isPageResource(r.URL.Path) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		log.Debug().Str("path", r.URL.Path).Msg("unauthenticated asset request rejected")
		http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	ctx := context.WithValue(r.Context(), utils.SessionCtxKey, session)
	h.serveContent(w, r.WithContext(ctx))
}

// servePassThrough serves content without any auth check. Used when the gate
// is disabled; configuration flags are still injected into served pages.
func (h *Handler) servePassThrough(w http.ResponseWriter, r *http.Request) {
	h.serveContent(w, r)
}

func (h *Handler) serveContent(w http.ResponseWriter, r *http.Request) {
	if isPageResource(r.URL.Path) && h.pages.index != nil {
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(h.pages.index)
		return
	}

	h.static.ServeHTTP(w, r)
}

// isPageResource reports whether the path names a page-like resource: one
// with no file extension, or an .html document.
func isPageResource(urlPath string) bool {
	ext := strings.ToLower(path.Ext(urlPath))
	return ext == "" || ext == ".html"
}
