package casedoc

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
)

// Fallback literals used when an optional value is absent. Each field binds
// one of these in the section tables; they are part of the field definition,
// not a single global default.
const (
	FallbackNotProvided   = "Not provided"
	FallbackNotAssigned   = "Not assigned"
	FallbackNotApplicable = "Not applicable"
	FallbackNotSpecified  = "Not specified"
)

var (
	englishMonths = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	filipinoMonths = [12]string{
		"Enero", "Pebrero", "Marso", "Abril", "Mayo", "Hunyo",
		"Hulyo", "Agosto", "Setyembre", "Oktubre", "Nobyembre", "Disyembre",
	}
)

// Locale controls long-form date rendering. The zero value is not usable;
// obtain one with ResolveLocale.
type Locale struct {
	tag    language.Tag
	months [12]string
}

// ResolveLocale parses a BCP 47 locale token and returns the matching Locale.
// Unknown or malformed tokens resolve to English rather than failing: every
// input has a defined output.
func ResolveLocale(token string) Locale {
	tag, err := language.Parse(token)
	if err != nil {
		tag = language.English
	}
	base, _ := tag.Base()
	months := englishMonths
	if base.String() == "fil" || base.String() == "tl" {
		months = filipinoMonths
	}
	return Locale{tag: tag, months: months}
}

// Tag returns the resolved language tag.
func (lc Locale) Tag() language.Tag { return lc.tag }

// LongDate renders t in the locale's long form, e.g. "January 5, 2024".
func (lc Locale) LongDate(t time.Time) string {
	months := lc.months
	if months[0] == "" {
		months = englishMonths
	}
	return fmt.Sprintf("%s %d, %d", months[t.Month()-1], t.Day(), t.Year())
}

// FormatDate renders an optional date, falling back to "Not specified".
func FormatDate(t *time.Time, lc Locale) string {
	if t == nil {
		return FallbackNotSpecified
	}
	return lc.LongDate(*t)
}

// Text returns value trimmed, or the field's fallback literal when the value
// is absent or blank.
func Text(value, fallback string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return fallback
	}
	return v
}

// Status renders an enumerated status string with its first rune capitalized.
// An empty status falls back to "Not specified".
func Status(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return FallbackNotSpecified
	}
	r := []rune(v)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
