package casedoc

import (
	"log/slog"
	"time"
)

// DefaultPageEstimate is the total-page estimate stamped into headers before
// layout begins. The engine is single-pass: the estimate is never recomputed
// after actual pagination, so headers may show a total that differs from the
// real page count. Callers that know better can override it with
// WithPageEstimate.
const DefaultPageEstimate = 2

// Option is a functional option for configuring a render call.
type Option func(*Options)

// Options holds the recognized render options. Construct with NewOptions so
// defaults are applied.
type Options struct {
	IncludeLogo  bool
	IncludePhoto bool
	Locale       string
	GeneratedAt  time.Time
	PageEstimate int
	Logger       *slog.Logger
}

// NewOptions applies the given options over the defaults: no logo, no photo,
// English dates, current time, a two-page estimate, and the default slog
// logger.
//
// Example:
//
//	opts := casedoc.NewOptions(
//	    casedoc.WithLogo(true),
//	    casedoc.WithLocale("fil-PH"),
//	)
func NewOptions(opts ...Option) Options {
	o := Options{
		Locale:       "en",
		GeneratedAt:  time.Now(),
		PageEstimate: DefaultPageEstimate,
		Logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.PageEstimate < 1 {
		o.PageEstimate = 1
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// WithLogo draws the brand logo in the page header when logo bytes are
// present.
func WithLogo(include bool) Option {
	return func(o *Options) {
		o.IncludeLogo = include
	}
}

// WithPhoto draws the subject photo on the first page when photo bytes are
// present.
func WithPhoto(include bool) Option {
	return func(o *Options) {
		o.IncludePhoto = include
	}
}

// WithLocale sets the BCP 47 locale token used for long-form dates.
// Unknown tokens resolve to English.
func WithLocale(locale string) Option {
	return func(o *Options) {
		o.Locale = locale
	}
}

// WithGeneratedAt pins the generation timestamp shown in footers and embedded
// in document metadata. Rendering is deterministic for a pinned timestamp.
func WithGeneratedAt(t time.Time) Option {
	return func(o *Options) {
		o.GeneratedAt = t
	}
}

// WithPageEstimate overrides the total-page estimate stamped into headers.
// See DefaultPageEstimate for why this is an estimate.
func WithPageEstimate(pages int) Option {
	return func(o *Options) {
		o.PageEstimate = pages
	}
}

// WithLogger sets the logger used for render warnings, e.g. unreadable logo
// or photo bytes.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
