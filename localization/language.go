package localization

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language identifies a supported interface language.
type Language string

const (
	Russian Language = "ru"
	English Language = "en"
)

// supported lists the languages with a translation catalog, in matcher
// priority order (first entry wins when the match is ambiguous).
var supported = []language.Tag{
	language.Russian,
	language.English,
}

var matcher = language.NewMatcher(supported)

// String returns the BCP 47 subtag for the language.
func (l Language) String() string {
	return string(l)
}

// DisplayKey returns the catalog key holding the language's display name.
func (l Language) DisplayKey() string {
	if l == English {
		return "language_english"
	}
	return "language_russian"
}

// Parse resolves a user-supplied language name or BCP 47 tag to a supported
// language. Plain names ("russian", "Русский") and region variants ("en-US",
// "ru-RU") are accepted.
func Parse(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ru", "rus", "russian", "русский":
		return Russian, nil
	case "en", "eng", "english":
		return English, nil
	}

	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("unknown language %q: %w", s, err)
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("unsupported language %q", s)
	}

	if supported[idx] == language.English {
		return English, nil
	}
	return Russian, nil
}
