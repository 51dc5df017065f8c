package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"worknestBack/internal/models"
)

// contextKey keeps middleware-injected values from colliding with other
// packages' context keys.
type contextKey string

// IdentityContextKey is where the auth middleware stores the caller's
// identity.
const IdentityContextKey contextKey = "identity"

// Localizer resolves message keys for a language; satisfied by
// *i18n.Resolver.
type Localizer interface {
	T(lang, key string, replacements map[string]string) string
	Catalog(lang string) map[string]string
	Supported(lang string) bool
}

// identityFromRequest returns the caller's identity, zero when anonymous.
func identityFromRequest(r *http.Request) models.Identity {
	identity, ok := r.Context().Value(IdentityContextKey).(models.Identity)
	if !ok {
		return models.Identity{}
	}
	return identity
}

// requestLang picks the response language: explicit ?lang= first, then the
// first Accept-Language entry, defaulting to English.
func requestLang(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}

	header := r.Header.Get("Accept-Language")
	if header == "" {
		return "en"
	}

	first := strings.TrimSpace(strings.Split(header, ",")[0])
	if i := strings.IndexAny(first, "-;"); i > 0 {
		first = first[:i]
	}
	if first == "" {
		return "en"
	}
	return first
}

type errorResponse struct {
	Error    string            `json:"error"`
	Key      string            `json:"key,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	BackTo   string            `json:"back_to,omitempty"`
	LoginURL string            `json:"login_url,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError sends a localized error body resolved from key.
func writeError(w http.ResponseWriter, t Localizer, lang string, status int, key string) {
	writeJSON(w, status, errorResponse{Error: t.T(lang, key, nil), Key: key})
}

// writeFieldErrors sends a 422 with per-field messages, localizing each
// field's translation key.
func writeFieldErrors(w http.ResponseWriter, t Localizer, lang string, fieldKeys map[string]string) {
	fields := make(map[string]string, len(fieldKeys))
	for field, key := range fieldKeys {
		fields[field] = t.T(lang, key, nil)
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error:  t.T(lang, "formSubmitError", nil),
		Fields: fields,
	})
}
