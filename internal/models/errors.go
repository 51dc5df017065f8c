package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrUnauthenticated    = errors.New("models: no identity present")
	ErrJobNotFound        = errors.New("models: job listing not found")
	ErrHomeNotFound       = errors.New("models: home listing not found")
	ErrImageTooLarge      = errors.New("models: image exceeds size limit")
)
