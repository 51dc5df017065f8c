package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"worknestBack/internal/handlers"
	"worknestBack/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Output(2, err.Error())
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": http.StatusText(http.StatusInternalServerError)})
}

// bearerIdentity parses the Authorization header into an identity. The zero
// identity means the request is anonymous or the token did not verify.
func (app *application) bearerIdentity(r *http.Request) models.Identity {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return models.Identity{}
	}

	identity, err := app.tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return models.Identity{}
	}
	return identity
}

// attachIdentity injects the caller's identity when a valid access token is
// present, and lets anonymous requests through untouched.
func (app *application) attachIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := app.bearerIdentity(r)
		if identity.IsZero() {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), handlers.IdentityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth rejects anonymous requests with a 401 that tells the client
// where to log in and where to come back to afterwards.
func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := app.bearerIdentity(r)
		if identity.IsZero() {
			lang := r.URL.Query().Get("lang")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"error":     app.translator.T(lang, "authRequired", nil),
				"key":       "authRequired",
				"login_url": "/login?next=" + url.QueryEscape(r.URL.Path),
			})
			return
		}
		ctx := context.WithValue(r.Context(), handlers.IdentityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
