package services

import (
	"errors"

	"storefront/internal/repositories"
)

// Service error taxonomy. Handlers map these to HTTP statuses; every one
// of them is recoverable by the caller within a single request.
var (
	// ErrNotFound covers both missing records and records owned by a
	// different user, so existence never leaks across accounts.
	ErrNotFound = repositories.ErrNotFound

	ErrValidation         = errors.New("validation failed")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account is not verified")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid verification token")
)
