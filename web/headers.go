package web

import (
	"net/http"
	"strings"
	"time"
)

var gmtZone *time.Location

func init() {
	var err error
	gmtZone, err = time.LoadLocation("GMT")
	if err != nil {
		gmtZone = time.UTC
	}
}

// HeaderHandler returns an http.Handler that adds the given headers to the response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// ExpiresHandler adds the Expires header, choosing expires for generated
// content (the descriptor, the catalog and preview pages) and staticExpires
// for raw example files.
func ExpiresHandler(h http.Handler, expires, staticExpires time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expiry := staticExpires
		if isGenerated(r.URL.Path) {
			expiry = expires
		}
		if expiry != 0 {
			w.Header().Set("Expires", time.Now().Add(expiry).In(gmtZone).Format(time.RFC1123))
		}
		h.ServeHTTP(w, r)
	})
}

// isGenerated reports whether the path is built from the catalog on each
// request rather than served from an example's files.
func isGenerated(p string) bool {
	switch {
	case strings.Contains(p, "/raw/"):
		return false
	case strings.HasSuffix(p, "/"), strings.HasSuffix(p, ".html"), strings.HasSuffix(p, ".json"):
		return true
	case p == "/examples", strings.HasPrefix(p, "/examples/"), p == "/health":
		return true
	}
	return false
}
