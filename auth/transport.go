package auth

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// loggingTransport logs each outgoing request and its outcome. Enabled
// through WithDebugHTTP, off by default.
type loggingTransport struct {
	next http.RoundTripper
}

func newLoggingTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next}
}

func (t *loggingTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	start := time.Now()
	response, err := t.next.RoundTrip(request)
	if err != nil {
		log.Err(err).
			Str("method", request.Method).
			Str("url", request.URL.Redacted()).
			Msg("request failed")
		return nil, err
	}
	log.Debug().
		Str("method", request.Method).
		Str("url", request.URL.Redacted()).
		Int("status", response.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")
	return response, nil
}
