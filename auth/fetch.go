package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
)

// FetchResource GETs a protected resource, presenting the access token as
// a bearer credential. The returned channel delivers exactly one
// ResourceResult and is never closed; the call site never blocks. An empty
// resource URL fails synchronously before any request is made.
func (c *Client) FetchResource(resourceURL, accessToken string) (<-chan ResourceResult, error) {
	if strings.TrimSpace(resourceURL) == "" {
		return nil, errors.Wrap(ErrNoResourceURL, "[FetchResource] cannot fetch resource")
	}

	results := make(chan ResourceResult, 1)
	go func() {
		results <- c.fetchResource(resourceURL, accessToken)
	}()
	return results, nil
}

// fetchResource performs the GET and shapes the outcome into a
// ResourceResult. Runs on the per call goroutine.
func (c *Client) fetchResource(resourceURL, accessToken string) ResourceResult {
	request, err := http.NewRequest(http.MethodGet, resourceURL, nil)
	if err != nil {
		return ResourceResult{Err: errors.Wrap(err, "[fetchResource] failed to create request")}
	}
	request.Header.Set("Authorization", "Bearer "+accessToken)
	request.Header.Set("Accept", oauth2.JSONMediaType)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return ResourceResult{Err: errors.Wrap(err, "[fetchResource] resource request failed")}
	}
	defer response.Body.Close()

	// A non-200 status is the result. The body is discarded unread.
	if response.StatusCode != http.StatusOK {
		return ResourceResult{StatusCode: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return ResourceResult{StatusCode: response.StatusCode, Err: errors.Wrap(err, "[fetchResource] failed to read response body")}
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ResourceResult{StatusCode: response.StatusCode, Err: errors.Wrapf(oauth2.ErrMalformedResponse, "[fetchResource] %v", err)}
	}

	return ResourceResult{Payload: payload, StatusCode: response.StatusCode}
}
