package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// fallbacks keeps the REPL usable even when no locale file could be
// loaded; the English wording here is the canonical surface contract.
var fallbacks = map[string]string{
	config.TKeyWelcome:   config.FallbackWelcome,
	config.TKeyPrompt:    config.FallbackPrompt,
	config.TKeyGoodbye:   config.FallbackGoodbye,
	config.TKeySaveError: config.FallbackSaveError,
}

// SetupI18n initializes the translation bundle and selects lang.
func (r *REPL) SetupI18n(lang string) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
		} else {
			slog.Debug(config.MsgLocaleLoaded,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyLang, langCode,
				config.LogKeyFile, name,
			)
		}
	}

	if lang == "" {
		lang = config.DefaultLanguage
	}

	r.I18nBundle = bundle
	r.Localizer = i18n.NewLocalizer(bundle, lang)
}

// GetMsg translates a surface key, falling back to the canonical English
// wording when no translation is available.
func (r *REPL) GetMsg(key string) string {
	if r.Localizer != nil {
		msg, err := r.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
		if err == nil {
			return msg
		}
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
	}
	if msg, ok := fallbacks[key]; ok {
		return msg
	}
	return key
}
