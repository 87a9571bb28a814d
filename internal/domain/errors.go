package domain

import "errors"

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrSessionExpired       = errors.New("session expired")
	ErrNotFound             = errors.New("record not found")
	ErrInvalidFilter        = errors.New("invalid filter")
	ErrInvalidLogin         = errors.New("invalid username or password")
	ErrManagerRequired      = errors.New("manager access required")
)
