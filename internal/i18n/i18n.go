// Package i18n supplies user-facing message text. The grading fallbacks
// always carry an English/Japanese pair; notification and validation
// messages use the configured default language.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var jsonUnmarshal = json.Unmarshal

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle     *i18n.Bundle
	defaultLoc *i18n.Localizer
	enLoc      *i18n.Localizer
	jaLoc      *i18n.Localizer
)

func init() {
	if err := Init("ja"); err != nil {
		panic(err)
	}
}

// Init loads the translation bundle and sets the default language used
// for single-language messages. All locale files are always loaded so
// bilingual pairs stay available regardless of the default.
func Init(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parse language %q: %w", lang, err)
	}

	b := i18n.NewBundle(tag)
	b.RegisterUnmarshalFunc("json", jsonUnmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return fmt.Errorf("read locale file %s: %w", e.Name(), err)
		}
		b.MustParseMessageFileBytes(data, e.Name())
	}

	bundle = b
	defaultLoc = i18n.NewLocalizer(bundle, lang)
	enLoc = i18n.NewLocalizer(bundle, "en")
	jaLoc = i18n.NewLocalizer(bundle, "ja")
	return nil
}

// T translates a message by ID in the default language.
func T(msgID string) string {
	return localize(defaultLoc, msgID, nil)
}

// Td translates a message by ID with template data in the default language.
func Td(msgID string, data map[string]any) string {
	return localize(defaultLoc, msgID, data)
}

// Pair returns the English and Japanese translations of a message.
func Pair(msgID string) (en, ja string) {
	return localize(enLoc, msgID, nil), localize(jaLoc, msgID, nil)
}

func localize(loc *i18n.Localizer, msgID string, data map[string]any) string {
	s, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		TemplateData: data,
	})
	if err != nil {
		slog.Warn("missing translation", "id", msgID, "error", err)
		return msgID
	}
	return s
}
