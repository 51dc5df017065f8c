package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"worknestBack/internal/models"
	"worknestBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
	T       Localizer
}

type sessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	Session       *models.Session `json:"session,omitempty"`
}

// SignUp registers a new email/password account and opens a session.
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.T, lang, http.StatusBadRequest, "formErrorInvalidBody")
		return
	}

	if fieldKeys := validateCredentials(req.Email, req.Password); len(fieldKeys) > 0 {
		writeFieldErrors(w, h.T, lang, fieldKeys)
		return
	}

	session, err := h.Service.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			writeError(w, h.T, lang, http.StatusConflict, "registerErrorEmailExists")
			return
		}
		log.Printf("SignUp error: %v", err)
		writeError(w, h.T, lang, http.StatusBadGateway, "authErrorGeneric")
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{Authenticated: true, Session: &session})
}

// SignIn authenticates an email/password pair and opens a session.
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.T, lang, http.StatusBadRequest, "formErrorInvalidBody")
		return
	}

	if fieldKeys := validateCredentials(req.Email, req.Password); len(fieldKeys) > 0 {
		writeFieldErrors(w, h.T, lang, fieldKeys)
		return
	}

	session, err := h.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeError(w, h.T, lang, http.StatusUnauthorized, "loginErrorInvalid")
			return
		}
		log.Printf("SignIn error: %v", err)
		writeError(w, h.T, lang, http.StatusBadGateway, "authErrorGeneric")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Session: &session})
}

// SignInGoogle exchanges a Google ID token for a session.
func (h *UserHandler) SignInGoogle(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)

	var req models.GoogleSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.T, lang, http.StatusBadRequest, "formErrorInvalidBody")
		return
	}
	if strings.TrimSpace(req.IDToken) == "" {
		writeFieldErrors(w, h.T, lang, map[string]string{"id_token": "formErrorRequired"})
		return
	}

	session, err := h.Service.SignInWithGoogle(r.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeError(w, h.T, lang, http.StatusUnauthorized, "loginErrorInvalid")
			return
		}
		log.Printf("SignInGoogle error: %v", err)
		writeError(w, h.T, lang, http.StatusBadGateway, "authErrorGeneric")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Session: &session})
}

// Session restores a session from the Refresh-Token header. An absent or
// expired token is a normal anonymous visit, not an error.
func (h *UserHandler) Session(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)

	session, err := h.Service.Resolve(r.Context(), r.Header.Get("Refresh-Token"))
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) || errors.Is(err, models.ErrUserNotFound) {
			writeJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
			return
		}
		log.Printf("Session restore error: %v", err)
		writeError(w, h.T, lang, http.StatusBadGateway, "authErrorGeneric")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Session: &session})
}

// SignOut revokes the caller's refresh token.
func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)

	if err := h.Service.SignOut(r.Context(), r.Header.Get("Refresh-Token")); err != nil {
		log.Printf("SignOut error: %v", err)
		writeError(w, h.T, lang, http.StatusBadGateway, "authErrorGeneric")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateCredentials(email, password string) map[string]string {
	errs := make(map[string]string)
	email = strings.TrimSpace(email)

	if email == "" || !strings.Contains(email, "@") {
		errs["email"] = "formErrorRequired"
	}
	if len(password) < 6 {
		errs["password"] = "formErrorRequired"
	}
	return errs
}
