package response

import "net/http"

// Redirect creates a redirect to location: 301 Moved Permanently when
// permanent is true, 302 Found otherwise.
func Redirect(location string, permanent bool) *Response {
	status := http.StatusFound
	if permanent {
		status = http.StatusMovedPermanently
	}
	return New().SetStatus(status).SetHeader("Location", location)
}

// RedirectSeeOther creates a 303 See Other, used after a POST.
func RedirectSeeOther(location string) *Response {
	return New().SetStatus(http.StatusSeeOther).SetHeader("Location", location)
}
