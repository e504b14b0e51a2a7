package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:generate mockgen -destination=mock/mock.go -package=i18nmock github.com/filipondios/kotcalc/internal/i18n Translator

// Translator produces user-facing text in one language.
type Translator interface {
	T(key string, vars Vars) string
	Number(n int) string
}

// Localizer is a Table bound to a single language.
type Localizer struct {
	table   *Table
	lang    string
	printer *message.Printer
}

// Localizer binds t to the supported language closest to requested.
func (t *Table) Localizer(requested string) *Localizer {
	lang := t.Match(requested)
	return &Localizer{
		table:   t,
		lang:    lang,
		printer: message.NewPrinter(language.Make(lang)),
	}
}

func (l *Localizer) Lang() string {
	return l.lang
}

func (l *Localizer) T(key string, vars Vars) string {
	return l.table.T(l.lang, key, vars)
}

// Number formats n with the language's digit grouping.
func (l *Localizer) Number(n int) string {
	return l.printer.Sprintf("%d", n)
}
