package domain

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionMalformed = errors.New("stored session is malformed")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrInvalidID        = errors.New("identifier must be a positive number")
	ErrInvalidArgument  = errors.New("invalid argument")
)
