package auth

import (
	"errors"
	"fmt"

	"github.com/go-authgate/authsync/internal/core"
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", core.ErrLoginFailed)
	ErrUnknownDomain      = fmt.Errorf("%w: no backend configured for domain", core.ErrLoginFailed)

	// ErrMissingCallbackValue is returned by a backend when the callback
	// handler left a required callback unanswered.
	ErrMissingCallbackValue = fmt.Errorf("%w: required callback was not answered", core.ErrLoginFailed)

	// HTTP API errors
	ErrHTTPAPIConnection  = fmt.Errorf("%w: failed to connect to authentication API", core.ErrLoginFailed)
	ErrHTTPAPIAuthFailed  = fmt.Errorf("%w: authentication API rejected credentials", core.ErrLoginFailed)
	ErrHTTPAPIInvalidResp = fmt.Errorf("%w: invalid response from authentication API", core.ErrLoginFailed)

	// ErrUserDatabase is returned when the file backend cannot load its user database.
	ErrUserDatabase = errors.New("invalid user database")
)
