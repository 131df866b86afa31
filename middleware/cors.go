package middleware

import "strings"

// Wildcard allows every value of a CORS list.
const Wildcard = "*"

// CORSOptions is the configuration shape handed to a CORS policy. Only
// origin checks are evaluated here.
//
// A list containing only Wildcard allows everything. AllowsCookies cannot
// be combined with a wildcard origin; Validate reports that.
type CORSOptions struct {
	Origins        []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*" mapstructure:"origins"`
	Methods        []string `env:"CORS_METHODS" envSeparator:"," envDefault:"GET,POST,PUT,PATCH,DELETE" mapstructure:"methods"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"*" mapstructure:"allowed_headers"`
	AllowsCookies  bool     `env:"CORS_ALLOWS_COOKIES" envDefault:"false" mapstructure:"allows_cookies"`
	// MaxAge is the preflight cache lifetime in seconds. Zero disables caching.
	MaxAge int `env:"CORS_MAX_AGE" envDefault:"0" mapstructure:"max_age"`
}

// DefaultCORSOptions mirrors the env defaults.
func DefaultCORSOptions() CORSOptions {
	return CORSOptions{
		Origins:        []string{Wildcard},
		Methods:        []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{Wildcard},
	}
}

// AllowsAnyOrigin reports whether Origins is the wildcard.
func (o CORSOptions) AllowsAnyOrigin() bool {
	return len(o.Origins) == 1 && o.Origins[0] == Wildcard
}

// Validate reports shape errors: a negative MaxAge, or cookies combined with
// a wildcard origin.
func (o CORSOptions) Validate() []string {
	var problems []string
	if o.MaxAge < 0 {
		problems = append(problems, "cors max age cannot be negative")
	}
	if o.AllowsCookies && o.AllowsAnyOrigin() {
		problems = append(problems, "cors cookies cannot be allowed for a wildcard origin")
	}
	return problems
}

// AllowsOrigin reports whether origin is listed or Origins is the wildcard.
// Matching ignores case.
func (o CORSOptions) AllowsOrigin(origin string) bool {
	if o.AllowsAnyOrigin() {
		return true
	}
	for _, allowed := range o.Origins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
