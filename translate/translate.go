// Package translate formats user-visible messages for the user's locale.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FALLBACK is the locale used when none can be discovered.
const FALLBACK = "en-US"

var printer = NewPrinter(userLocales()...)

// userLocales returns the user's preferred locales.
func userLocales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ucrom: locale: %v", err)
	}

	return locales
}

// NewPrinter creates a message printer for the best match of the locales.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{FALLBACK}
	}

	tag := message.MatchLanguage(locales...)
	if tag == language.Und {
		tag = language.MustParse(FALLBACK)
	}

	return message.NewPrinter(tag)
}

// From formats an en-US Sprintf() format for the user's locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes an en-US Printf() format, formatted for the user's locale.
func Fprintf(w io.Writer, key message.Reference, args ...any) (int, error) {
	return printer.Fprintf(w, key, args...)
}
