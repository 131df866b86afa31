// Package clientip extracts the client IP address from HTTP requests.
//
// Proxy headers are checked in priority order:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Every candidate is parsed and normalized with net.ParseIP; malformed values
// and the unspecified address are skipped. GetIP never panics and always
// returns a string.
//
//	ip := clientip.GetIP(r)
package clientip
