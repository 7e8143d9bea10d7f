package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMemberLoginRefused = errors.New("members cannot log in, use QR code check-in")
	ErrInvalidToken       = errors.New("invalid or missing token")
)
