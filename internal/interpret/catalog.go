// Package interpret holds the translated labels and the numerological
// interpretation texts (compatibility tables, curiosities, energy schema).
package interpret

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-numerology/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales/"
	localePrefix = "active."
	localeSuffix = ".json"
)

// Catalog resolves message keys for the active language. Italian is the
// source language: keys missing from another locale fall back to it, and
// keys missing everywhere resolve to themselves.
type Catalog struct {
	bundle    *i18n.Bundle
	languages []string

	mu        sync.RWMutex
	lang      string
	localizer *i18n.Localizer
}

// NewCatalog loads every embedded locale and activates lang.
func NewCatalog(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.Italian)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(strings.TrimSuffix(localeDir, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	c := &Catalog{bundle: bundle}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if code == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, code,
			config.LogKeyFile, name,
		)
		c.languages = append(c.languages, code)
	}
	slices.Sort(c.languages)

	if lang == "" {
		lang = config.DefaultLanguage
	}
	if err := c.SetLanguage(lang); err != nil {
		return nil, err
	}
	return c, nil
}

// Languages lists the loaded locale codes.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.languages)
}

// Language returns the active locale code.
func (c *Catalog) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// SetLanguage switches the active locale.
func (c *Catalog) SetLanguage(lang string) error {
	if !slices.Contains(c.languages, lang) {
		return fmt.Errorf("%s: %q", config.ErrLanguageUnknown, lang)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lang = lang
	c.localizer = i18n.NewLocalizer(c.bundle, lang)
	return nil
}

func (c *Catalog) localize(key string, data map[string]any) (string, error) {
	c.mu.RLock()
	l := c.localizer
	c.mu.RUnlock()
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})

	// A message served from the Italian fallback still reports not-found.
	var notFound *i18n.MessageNotFoundErr
	if errors.As(err, &notFound) && msg != "" {
		return msg, nil
	}
	return msg, err
}

// Msg translates key, returning the key itself when no locale defines it.
func (c *Catalog) Msg(key string) string {
	return c.MsgWith(key, nil)
}

// MsgWith translates key and executes its template with data.
func (c *Catalog) MsgWith(key string, data map[string]any) string {
	msg, err := c.localize(key, data)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// Has reports whether key resolves in the active language or the fallback.
func (c *Catalog) Has(key string) bool {
	_, err := c.localize(key, nil)
	return err == nil
}

// CompatKey builds the lookup key of a compatibility pair. Pairs are
// symmetric, the smaller number always comes first.
func CompatKey(table string, a, b int) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf(config.FormatCompatKey, config.CompatPrefix, table, a, b)
}

// Compatibility returns the interpretation of the (a, b) pair in table,
// or the table default when the pair has no dedicated entry.
func (c *Catalog) Compatibility(table string, a, b int) string {
	key := CompatKey(table, a, b)
	if msg, err := c.localize(key, nil); err == nil {
		return msg
	}
	return c.Msg(fmt.Sprintf(config.FormatCompatDefault, config.CompatPrefix, table, config.CompatDefault))
}

// Digit returns the text attached to n in a single-number table (pet,
// address, energy...). ok is false when the table has no entry for n.
func (c *Catalog) Digit(table string, n int) (text string, ok bool) {
	msg, err := c.localize(fmt.Sprintf(config.FormatDigitKey, table, n), nil)
	if err != nil {
		return "", false
	}
	return msg, true
}
