package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/myagency/backend/internal/service"
	"github.com/myagency/backend/pkg/auth"
)

// AuthHandler implements the admin login/logout flow.
type AuthHandler struct {
	authService service.AuthService
	sessions    *auth.MemoryStore
}

// NewAuthHandler creates an AuthHandler with the given service and session store.
func NewAuthHandler(authService service.AuthService, sessions *auth.MemoryStore) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// LoginPage handles GET /auth/login. The login form itself is rendered by the
// frontend; this endpoint reports whether the caller is already signed in and
// echoes a failure code from a previous attempt.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		if _, ok := h.sessions.Get(cookie.Value); ok {
			http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"authenticated": false,
		"error":         r.URL.Query().Get("error"),
	})
}

// Login handles POST /auth/login. Success creates a session and sets the
// cookie; failure never reveals whether the username or password was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	fields, err := parseFields(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	username := fields["username"]
	password := fields["password"]
	if username == "" || password == "" {
		h.loginFailed(w, r)
		return
	}

	admin, err := h.authService.Login(r.Context(), username, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.loginFailed(w, r)
		return
	}
	if err != nil {
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	token, err := h.sessions.Create(admin.ID, admin.Username)
	if err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(auth.DefaultSessionTTL),
	})

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, map[string]string{"ok": "true"})
		return
	}
	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

func (h *AuthHandler) loginFailed(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		respondError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	http.Redirect(w, r, auth.LoginPath+"?error=invalid_credentials", http.StatusSeeOther)
}

// Logout handles GET /auth/logout. The session is destroyed unconditionally
// and the caller always ends up anonymous on the home page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		h.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
