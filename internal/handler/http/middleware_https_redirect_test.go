package http

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestWithHTTPSRedirect(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		forwardedProto string
		tls            bool
		wantStatus     int
		wantLocation   string
	}{
		{
			name:         "plain http GET is redirected",
			method:       http.MethodGet,
			target:       "http://pizza.example/",
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "https://pizza.example/",
		},
		{
			name:         "path and query are kept",
			method:       http.MethodGet,
			target:       "http://pizza.example/0191e9a4-5f0e-7c3a-9c61-1b1e2e3f4a5b?x=1",
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "https://pizza.example/0191e9a4-5f0e-7c3a-9c61-1b1e2e3f4a5b?x=1",
		},
		{
			name:         "POST keeps 307 so the body is resent",
			method:       http.MethodPost,
			target:       "http://pizza.example:8080/",
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "https://pizza.example:8080/",
		},
		{
			name:           "proxy terminated TLS",
			method:         http.MethodGet,
			target:         "http://pizza.example/",
			forwardedProto: "HTTPS",
			wantStatus:     http.StatusOK,
		},
		{
			name:           "proxy says http",
			method:         http.MethodGet,
			target:         "http://pizza.example/",
			forwardedProto: "http",
			wantStatus:     http.StatusTemporaryRedirect,
			wantLocation:   "https://pizza.example/",
		},
		{
			name:       "direct TLS",
			method:     http.MethodGet,
			target:     "https://pizza.example/",
			tls:        true,
			wantStatus: http.StatusOK,
		},
	}

	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.forwardedProto != "" {
				req.Header.Set(forwardedProtoHeader, tt.forwardedProto)
			}
			if tt.tls {
				req.TLS = &tls.ConnectionState{}
			} else {
				req.TLS = nil
			}

			rec := httptest.NewRecorder()
			h.withHTTPSRedirect(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
