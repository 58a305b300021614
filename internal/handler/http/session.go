package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/samidy/monosync/internal/utils"
	"github.com/samidy/monosync/models"
)

// sessionFromRequest resolves the authenticated session carried by the
// request's cookie.
//
// It returns [ErrNoSessionCookie] when the cookie is absent and
// [ErrInvalidSession] (wrapped) when the cookie's token fails validation.
func (h *Handler) sessionFromRequest(r *http.Request) (models.Session, error) {
	cookie, err := r.Cookie(h.config.CookieName)
	if err != nil {
		return models.Session{}, ErrNoSessionCookie
	}

	session, err := utils.ValidateSessionToken(cookie.Value, h.config.AuthSecret, sessionIssuer)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	return session, nil
}

// mintSessionCookie signs a new session token and sets it on the response.
func (h *Handler) mintSessionCookie(w http.ResponseWriter, session models.Session) error {
	tokenString, err := utils.GenerateSessionToken(sessionIssuer, session, h.config.SessionMaxAge, h.config.AuthSecret)
	if err != nil {
		return fmt.Errorf("generate session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.config.CookieName,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(h.config.SessionMaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// clearSessionCookie expires the session cookie on the client.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
