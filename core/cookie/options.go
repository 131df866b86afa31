package cookie

import (
	"net/http"
	"time"
)

// SameSite values accepted by WithSameSite.
const (
	SameSiteStrict = "Strict"
	SameSiteLax    = "Lax"
	SameSiteNone   = "None"
)

// Options holds optional cookie attributes. Zero values are omitted.
type Options struct {
	Domain   string
	Path     string
	Expires  time.Time
	MaxAge   int
	HTTPOnly bool
	Secure   bool
	SameSite string
}

// Option is a functional option for configuring cookie attributes.
type Option func(*Options)

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithPath sets the cookie path attribute.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithExpires sets the absolute expiry.
func WithExpires(t time.Time) Option {
	return func(o *Options) {
		o.Expires = t
	}
}

// WithMaxAge sets the cookie max-age in seconds.
// Negative values delete the cookie immediately.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

// WithHTTPOnly prevents JavaScript access to the cookie.
func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HTTPOnly = httpOnly
	}
}

// WithSecure restricts the cookie to HTTPS.
func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// WithSameSite sets the SameSite attribute ("Strict", "Lax" or "None").
func WithSameSite(sameSite string) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

func (o Options) sameSite() http.SameSite {
	switch o.SameSite {
	case SameSiteStrict:
		return http.SameSiteStrictMode
	case SameSiteLax:
		return http.SameSiteLaxMode
	case SameSiteNone:
		return http.SameSiteNoneMode
	default:
		return 0
	}
}
