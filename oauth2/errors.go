package oauth2

import "errors"

var (
	ErrMalformedURL      = errors.New("malformed url")
	ErrMalformedResponse = errors.New("malformed response body")
)
