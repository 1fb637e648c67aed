package domain

import "strings"

type UserID string

type Identity struct {
	UserID   UserID
	Username string
	Password string
	// LastSentTo is the recipient of the most recent successful send, used to
	// pre-fill the next send modal.
	LastSentTo string
}

type Credentials struct {
	Username string
	Password string
}

func (i Identity) Credentials() Credentials {
	return Credentials{Username: i.Username, Password: i.Password}
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return ErrEmptyUsername
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

// UnknownUserPolicy decides what signing in with an unregistered username does.
type UnknownUserPolicy string

const (
	UnknownUserSignup UnknownUserPolicy = "signup"
	UnknownUserReject UnknownUserPolicy = "reject"
)

func (p UnknownUserPolicy) Valid() bool {
	switch p {
	case UnknownUserSignup, UnknownUserReject:
		return true
	default:
		return false
	}
}
