// Package i18n holds the static translation table and the language manager
// that applies it to the client's views.
package i18n

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is used whenever the persisted selection is absent or
// unknown.
const DefaultLocale = "en"

// Locales supported by the client, in display order.
var Locales = []string{"en", "vi"}

// Bundle is the immutable locale -> key -> string table. It is loaded once
// at startup and never mutated afterwards.
type Bundle struct {
	dict map[string]map[string]string
}

// LoadBundle parses the embedded dictionaries for every supported locale.
func LoadBundle() (*Bundle, error) {
	b := &Bundle{dict: make(map[string]map[string]string, len(Locales))}
	for _, locale := range Locales {
		raw, err := localeFS.ReadFile("locales/" + locale + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", locale, err)
		}
		m := map[string]string{}
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal locale %s: %w", locale, err)
		}
		b.dict[locale] = m
	}
	return b, nil
}

// T returns the translation of key in locale. A missing key degrades to the
// key itself; it never fails and never returns an empty string for a
// non-empty key.
func (b *Bundle) T(locale, key string) string {
	if m, ok := b.dict[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Has reports whether locale is part of the bundle.
func (b *Bundle) Has(locale string) bool {
	_, ok := b.dict[locale]
	return ok
}

// Supported returns the loaded locale codes, sorted.
func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.dict))
	for l := range b.dict {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Keys returns the key set of one locale, sorted. Used by tests to check
// that the dictionaries stay in sync.
func (b *Bundle) Keys(locale string) []string {
	m := b.dict[locale]
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
