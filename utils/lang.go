package utils

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle = i18n.NewBundle(language.English)

// InitI18NBundle loads every yaml message file under dir. Messages missing
// from the files fall back to the English text given at the call site.
func InitI18NBundle(dir string) error {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	if dir == "" {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}

	for _, f := range files {
		if _, err := bundle.LoadMessageFile(f); err != nil {
			return err
		}
	}

	return nil
}

func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Translate localizes messageID for the Accept-Language value lang and returns
// fallback when no translation exists
func Translate(lang, messageID, fallback string) string {
	msg, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    messageID,
			Other: fallback,
		},
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
