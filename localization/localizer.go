// Package localization provides the translation catalogs for all user-facing
// text. Catalogs are embedded YAML, one file per language, holding plain
// strings (printf-style placeholders) and string lists.
package localization

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// catalog mirrors the on-disk layout of a locale file.
type catalog struct {
	Strings map[string]string   `yaml:"strings"`
	Lists   map[string][]string `yaml:"lists"`
}

var (
	catalogs     map[Language]*catalog
	catalogsOnce sync.Once
)

// loadCatalogs parses the embedded locale files. Malformed embedded data is a
// build defect, so failures panic.
func loadCatalogs() map[Language]*catalog {
	catalogsOnce.Do(func() {
		catalogs = make(map[Language]*catalog, len(supported))
		for _, lang := range []Language{Russian, English} {
			data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", lang))
			if err != nil {
				panic(fmt.Sprintf("missing locale catalog for %s: %v", lang, err))
			}
			var c catalog
			if err := yaml.Unmarshal(data, &c); err != nil {
				panic(fmt.Sprintf("malformed locale catalog for %s: %v", lang, err))
			}
			catalogs[lang] = &c
		}
	})
	return catalogs
}

// Localizer resolves catalog keys for its current language. The zero value is
// not usable; construct with NewLocalizer.
type Localizer struct {
	mu       sync.RWMutex
	language Language
}

// NewLocalizer creates a localizer for the given language.
func NewLocalizer(lang Language) *Localizer {
	loadCatalogs()
	return &Localizer{language: lang}
}

// SetLanguage switches the active language.
func (l *Localizer) SetLanguage(lang Language) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.language = lang
}

// Language returns the active language.
func (l *Localizer) Language() Language {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.language
}

func (l *Localizer) catalog() *catalog {
	c, ok := loadCatalogs()[l.Language()]
	if !ok {
		return loadCatalogs()[Russian]
	}
	return c
}

// Get returns the localized string for key. Missing keys render a visible
// marker rather than an empty string.
func (l *Localizer) Get(key string) string {
	if s, ok := l.catalog().Strings[key]; ok {
		return s
	}
	return fmt.Sprintf("[missing: %s]", key)
}

// Getf returns the localized string for key with its placeholders filled in.
func (l *Localizer) Getf(key string, args ...interface{}) string {
	if s, ok := l.catalog().Strings[key]; ok {
		return fmt.Sprintf(s, args...)
	}
	return fmt.Sprintf("[missing: %s]", key)
}

// GetList returns the localized string list for key, or nil when absent.
func (l *Localizer) GetList(key string) []string {
	return l.catalog().Lists[key]
}
