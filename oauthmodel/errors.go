package oauthmodel

import "errors"

var (
	ErrUnsupportedGrantType = errors.New("unsupported grant type")
)
