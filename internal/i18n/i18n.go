// Package i18n holds the calculator's static translation table.
//
// A table is a JSON document of the form
//
//	{"default": "en", "strings": {"key": {"en": "text", "es": "texto"}}}
//
// Texts may contain {token} placeholders that are filled from Vars.
package i18n

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/language"

	"github.com/filipondios/kotcalc/internal/errors"
)

// FallbackLanguage is used when a key has no text in the requested language.
const FallbackLanguage = "en"

//go:embed i18n.json
var builtin []byte

// Vars fills {token} placeholders.
type Vars map[string]string

// Table maps keys to per-language texts.
type Table struct {
	def     string
	strings map[string]map[string]string
	langs   []string
}

// Builtin returns the table shipped with the binary.
func Builtin() (*Table, error) {
	return Parse(builtin)
}

// Load reads a table from path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf("reading i18n table %s", path))
		}
		return nil, errors.Wrapf(err, "reading i18n table %s", path)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing i18n table %s", path)
	}
	return t, nil
}

// Parse decodes a table document.
func Parse(data []byte) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.InvalidArgument("i18n table is not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	t := &Table{
		def:     doc.Get("default").String(),
		strings: make(map[string]map[string]string),
	}
	if t.def == "" {
		t.def = FallbackLanguage
	}

	seen := map[string]bool{t.def: true}
	doc.Get("strings").ForEach(func(key, texts gjson.Result) bool {
		if !texts.IsObject() {
			return true
		}
		byLang := make(map[string]string)
		texts.ForEach(func(lang, text gjson.Result) bool {
			byLang[lang.String()] = text.String()
			seen[lang.String()] = true
			return true
		})
		t.strings[key.String()] = byLang
		return true
	})

	for lang := range seen {
		t.langs = append(t.langs, lang)
	}
	sort.Strings(t.langs)
	return t, nil
}

// Default returns the table's default language.
func (t *Table) Default() string {
	return t.def
}

// Languages returns every language the table has texts for, sorted.
func (t *Table) Languages() []string {
	return append([]string(nil), t.langs...)
}

// T returns the text for key in lang, falling back to FallbackLanguage and
// then to the key itself. Placeholders without a matching var stay intact.
func (t *Table) T(lang, key string, vars Vars) string {
	texts := t.strings[key]
	text := texts[lang]
	if text == "" {
		text = texts[FallbackLanguage]
	}
	if text == "" {
		return key
	}
	if len(vars) == 0 {
		return text
	}

	pairs := make([]string, 0, 2*len(vars))
	for token, value := range vars {
		pairs = append(pairs, "{"+token+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Match picks the supported language closest to requested, e.g. "es-AR"
// resolves to "es". Unknown or empty requests get the default language.
func (t *Table) Match(requested string) string {
	if requested == "" {
		return t.def
	}

	supported := []string{t.def}
	for _, lang := range t.langs {
		if lang != t.def {
			supported = append(supported, lang)
		}
	}

	tags := make([]language.Tag, len(supported))
	for i, lang := range supported {
		tags[i] = language.Make(lang)
	}

	want, err := language.Parse(requested)
	if err != nil {
		return t.def
	}
	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return t.def
	}
	return supported[idx]
}
