// Package locale negotiates Accept-Language into a numeric date layout
// it covers the date only, the forecast texts stay english
package locale

import (
	"context"
	"time"

	"golang.org/x/text/language"
)

// Locale is a negotiated language and the layout its short dates use
type Locale struct {
	Tag    language.Tag
	Layout string
}

// Format renders the calendar date of t in the locale layout
func (l Locale) Format(t time.Time) string {
	if l.Layout == "" {
		return t.Format(defaultLayout)
	}
	return t.Format(l.Layout)
}

// String returns the BCP 47 tag
func (l Locale) String() string { return l.Tag.String() }

const defaultLayout = "1/2/2006"

// supported is ordered; the first entry is the fallback
var supported = []Locale{
	{language.AmericanEnglish, defaultLayout},
	{language.BritishEnglish, "02/01/2006"},
	{language.French, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.Spanish, "2/1/2006"},
	{language.Italian, "2/1/2006"},
	{language.Dutch, "2-1-2006"},
	{language.Portuguese, "02/01/2006"},
	{language.Polish, "2.01.2006"},
	{language.Russian, "02.01.2006"},
	{language.Swedish, "2006-01-02"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	out := make([]language.Tag, len(supported))
	for i, l := range supported {
		out[i] = l.Tag
	}
	return out
}

// Default is the locale used when nothing matches
func Default() Locale { return supported[0] }

// Match picks the best supported locale for an Accept-Language header value
// malformed or empty headers fall back to Default
func Match(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Default()
	}
	_, idx := language.MatchStrings(matcher, acceptLanguage)
	if idx < 0 || idx >= len(supported) {
		return Default()
	}
	return supported[idx]
}

type ctxKey struct{}

// WithLocale stores l on ctx
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the negotiated locale, Default when absent
func FromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(ctxKey{}).(Locale); ok {
		return l
	}
	return Default()
}
