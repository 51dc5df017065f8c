package handlers

import (
	"net/http"

	"worknestBack/internal/i18n"
)

type I18nHandler struct {
	Resolver *i18n.Resolver
}

// GetCatalog serves the full message catalog for a language. Unknown
// languages fall back to English rather than erroring, matching the
// runtime lookup behaviour.
func (h *I18nHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get(":lang")
	if !h.Resolver.Supported(lang) {
		lang = i18n.DefaultLanguage
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lang":      lang,
		"messages":  h.Resolver.Catalog(lang),
		"languages": h.Resolver.Languages(),
	})
}
