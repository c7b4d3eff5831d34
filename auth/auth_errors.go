package auth

import "errors"

var (
	ErrNoTokenURL          = errors.New("no token url")
	ErrNoResourceURL       = errors.New("no resource url")
	ErrUnknownServiceGrant = errors.New("unknown service grant")
)
