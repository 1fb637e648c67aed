package domain

import "errors"

var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrUnknownItem      = errors.New("unknown item")
	ErrUnknownPlant     = errors.New("unknown plant")
	ErrInvalidRecipe    = errors.New("invalid recipe")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
)
