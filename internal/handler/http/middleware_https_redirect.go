package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/pizza-specials/internal/logger"
)

const forwardedProtoHeader = "X-Forwarded-Proto"

// withHTTPSRedirect sends plain http requests to the same URL over https with
// 307 Temporary Redirect, which keeps the method and body of the request.
// Requests that arrived over TLS, or through a proxy that terminated TLS and
// set X-Forwarded-Proto: https, pass through.
func (h *Handler) withHTTPSRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isHTTPS(r) {
			next.ServeHTTP(w, r)
			return
		}

		target := url.URL{
			Scheme:   "https",
			Host:     r.Host,
			Path:     r.URL.Path,
			RawPath:  r.URL.RawPath,
			RawQuery: r.URL.RawQuery,
		}

		logger.FromRequest(r).Debug().Str("location", target.String()).Msg("redirecting to https")
		http.Redirect(w, r, target.String(), http.StatusTemporaryRedirect)
	})
}

func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(forwardedProtoHeader)), "https")
}
