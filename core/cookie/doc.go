// Package cookie describes response cookies and serializes them into
// Set-Cookie header values.
//
//	c := cookie.New("session", "abc123",
//		cookie.WithPath("/"),
//		cookie.WithHTTPOnly(true),
//		cookie.WithSameSite(cookie.SameSiteLax),
//	)
//	line := c.String() // session=abc123; Path=/; HttpOnly; SameSite=Lax
//
// Attributes are emitted only when set. Serialization delegates to
// net/http so names and values follow RFC 6265 quoting rules.
package cookie
