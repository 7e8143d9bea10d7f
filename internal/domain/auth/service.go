package auth

import "context"

// AuthService defines registration and login. Password hashing here is a
// placeholder credential check for managers and leads, not a hardening
// surface; members never hold credentials.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
