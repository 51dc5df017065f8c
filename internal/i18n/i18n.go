package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLanguage is the fallback catalog; every key is expected to exist here.
const DefaultLanguage = "en"

// Resolver maps a language code and string key to a localized message.
// Lookup order: requested language, then English, then the raw key itself, so
// a missing translation never breaks a response.
type Resolver struct {
	catalogs map[string]map[string]string
}

// Load parses every embedded locale catalog. The locale set is fixed at build
// time; a malformed catalog is a packaging error and fails loudly.
func Load() (*Resolver, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: reading embedded locales: %w", err)
	}

	catalogs := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		lang := strings.TrimSuffix(name, ".yaml")
		if lang == name {
			continue
		}

		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			return nil, fmt.Errorf("i18n: reading locale %s: %w", name, err)
		}

		catalog := make(map[string]string)
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("i18n: parsing locale %s: %w", name, err)
		}
		catalogs[lang] = catalog
	}

	if _, ok := catalogs[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("i18n: default language %q catalog missing", DefaultLanguage)
	}

	return &Resolver{catalogs: catalogs}, nil
}

// Languages returns the supported language codes in sorted order.
func (r *Resolver) Languages() []string {
	langs := make([]string, 0, len(r.catalogs))
	for lang := range r.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Supported reports whether lang has its own catalog.
func (r *Resolver) Supported(lang string) bool {
	_, ok := r.catalogs[lang]
	return ok
}

// T resolves key for lang, substituting {{name}} placeholders from
// replacements.
func (r *Resolver) T(lang, key string, replacements map[string]string) string {
	msg, ok := r.catalogs[lang][key]
	if !ok && lang != DefaultLanguage {
		msg, ok = r.catalogs[DefaultLanguage][key]
	}
	if !ok {
		msg = key
	}

	for name, value := range replacements {
		msg = strings.ReplaceAll(msg, "{{"+name+"}}", value)
	}
	return msg
}

// Catalog returns a copy of the full message catalog for lang, falling back
// to the default language when lang is unknown.
func (r *Resolver) Catalog(lang string) map[string]string {
	src, ok := r.catalogs[lang]
	if !ok {
		src = r.catalogs[DefaultLanguage]
	}

	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
