package cookie

import "net/http"

// Cookie is a named response cookie.
type Cookie struct {
	Name    string
	Value   string
	Options Options
}

// New creates a cookie with the given attributes.
func New(name, value string, opts ...Option) Cookie {
	c := Cookie{Name: name, Value: value}
	for _, opt := range opts {
		opt(&c.Options)
	}
	return c
}

// HTTP converts the cookie into its net/http form.
func (c Cookie) HTTP() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Options.Domain,
		Path:     c.Options.Path,
		Expires:  c.Options.Expires,
		MaxAge:   c.Options.MaxAge,
		HttpOnly: c.Options.HTTPOnly,
		Secure:   c.Options.Secure,
		SameSite: c.Options.sameSite(),
	}
}

// String returns the Set-Cookie header value. An invalid name yields "".
func (c Cookie) String() string {
	return c.HTTP().String()
}
