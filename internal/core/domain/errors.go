package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials never tells which of email or password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailExists          = errors.New("email already exists")
	ErrDirectoryUnavailable = errors.New("user directory unavailable")

	// ErrValidation wraps every input problem reported by the user service.
	ErrValidation = errors.New("validation failed")
)

// TransportError reports a failed round trip to the user directory.
// It is a system failure and must not be treated as "user not found".
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrDirectoryUnavailable, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrDirectoryUnavailable
}

type TokenErrorKind int

const (
	TokenMalformed TokenErrorKind = iota + 1
	TokenBadSignature
	TokenExpired
)

func (k TokenErrorKind) String() string {
	switch k {
	case TokenMalformed:
		return "malformed"
	case TokenBadSignature:
		return "bad signature"
	case TokenExpired:
		return "expired"
	default:
		return "unknown"
	}
}

var (
	ErrTokenMalformed    = errors.New("token is malformed")
	ErrTokenBadSignature = errors.New("token signature is invalid")
	ErrTokenExpired      = errors.New("token is expired")
)

type TokenError struct {
	Kind TokenErrorKind
	Err  error
}

func NewTokenError(kind TokenErrorKind, err error) *TokenError {
	return &TokenError{Kind: kind, Err: err}
}

func (e *TokenError) Error() string {
	if e.Err == nil {
		return "token " + e.Kind.String()
	}
	return fmt.Sprintf("token %s: %v", e.Kind, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

func (e *TokenError) Is(target error) bool {
	switch target {
	case ErrTokenMalformed:
		return e.Kind == TokenMalformed
	case ErrTokenBadSignature:
		return e.Kind == TokenBadSignature
	case ErrTokenExpired:
		return e.Kind == TokenExpired
	}
	return false
}
