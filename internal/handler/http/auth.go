package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/samidy/monosync/internal/app"
	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/utils"
	"github.com/samidy/monosync/models"
)

type loginRequest struct {
	Token string `json:"token"`
}

// health is the liveness probe. It bypasses the gate entirely.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// loginPage serves the login page, or redirects home when the request
// already carries a valid session.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessionFromRequest(r); err == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if h.pages.login == nil {
		http.Error(w, app.MsgLoginPageNotFound, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(h.pages.login)
}

// login exchanges a record-service bearer token for a first-party session
// cookie. The token is verified server-side against the record service;
// verification failures are never retried.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		log.Err(err).Msg("missing or invalid token in login request")
		utils.WriteJSON(w, map[string]string{"error": app.MsgMissingToken}, http.StatusBadRequest)
		return
	}

	identity, err := h.verifier.Verify(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, baas.ErrUnauthorized):
			log.Err(err).Msg("token rejected by the record service")
			utils.WriteJSON(w, map[string]string{"error": app.MsgInvalidToken}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("token verification failed")
			utils.WriteJSON(w, map[string]string{"error": app.MsgAuthServerError}, http.StatusInternalServerError)
			return
		}
	}

	session := models.Session{
		UserID:   identity.ID,
		Email:    identity.Email,
		IssuedAt: time.Now(),
	}
	if err := h.mintSessionCookie(w, session); err != nil {
		log.Err(err).Msg("minting session cookie failed")
		utils.WriteJSON(w, map[string]string{"error": app.MsgAuthServerError}, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("uid", session.UserID).Msg("session created")
	utils.WriteJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

// logout clears the session cookie and instructs the client to purge its
// local cache and storage.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	w.Header().Set("Clear-Site-Data", `"cache", "storage"`)
	utils.WriteJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}
