package core

import (
	"context"
	"errors"
)

// ErrLoginFailed is wrapped by every error a LoginBackend returns for a
// rejected or failed login attempt.
var ErrLoginFailed = errors.New("login failed")

// Credential holds the login identifier and secret for one authentication attempt.
type Credential struct {
	LoginID string
	Secret  string
}

// AuthSettings selects the backend domain and the marker group whose members
// are treated as role names.
type AuthSettings struct {
	BackendDomain   string
	RoleMarkerGroup string
}

// Principal is an identity-bearing entity returned by a backend.
type Principal interface {
	Name() string
}

// Group is a Principal that contains other principals.
type Group interface {
	Principal
	Members() ([]Principal, error)
}

// Subject is the principal graph produced by a successful login.
type Subject struct {
	Principals []Principal
}

// Callback is a single request for information issued by a backend during login.
type Callback interface {
	Prompt() string
}

// ValueSetter is implemented by callbacks that accept an arbitrary string value.
type ValueSetter interface {
	SetValue(value string)
}

// CallbackHandler answers the callbacks a backend issues.
type CallbackHandler interface {
	Handle(ctx context.Context, callbacks []Callback) error
}

// LoginBackend is the interface that pluggable authentication backends
// must implement.
type LoginBackend interface {
	Login(ctx context.Context, handler CallbackHandler) (*Subject, error)
	Name() string
}
