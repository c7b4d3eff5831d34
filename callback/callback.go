package callback

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Result carries the parameters the authorization server sent back on the
// redirect.
type Result struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// Denied reports whether the authorization server refused the request.
func (r Result) Denied() bool {
	return r.Error != ""
}

// ParseRequest reads the redirect parameters.
// FormValue covers both GET redirects (query parameters) and form_post
// responses (POST form data).
func ParseRequest(r *http.Request) Result {
	return Result{
		Code:             r.FormValue("code"),
		State:            r.FormValue("state"),
		Error:            r.FormValue("error"),
		ErrorDescription: r.FormValue("error_description"),
	}
}

// Handler serves the redirect endpoint. Each redirect with a known state
// claims its pending flow from the store and is handed to done exactly
// once, denials included; unknown or replayed states never reach done.
func Handler(store *Store, done func(Result, Flow)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := ParseRequest(r)

		if result.State == "" {
			http.Error(w, "Missing state parameter", http.StatusBadRequest)
			return
		}

		// One-time claim: a replayed state fails here
		flow, err := store.Take(result.State)
		if err != nil {
			log.Err(err).Msg("rejected authorization callback")
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		if result.Denied() {
			done(result, flow)
			http.Error(w, fmt.Sprintf("Authorization failed: %s - %s", result.Error, result.ErrorDescription), http.StatusBadRequest)
			return
		}

		if result.Code == "" {
			http.Error(w, "Missing code parameter", http.StatusBadRequest)
			return
		}

		done(result, flow)
		_, _ = w.Write([]byte("Authorization complete. You can close this window."))
	}
}
