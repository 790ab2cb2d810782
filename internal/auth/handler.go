package auth

import (
	"context"

	"github.com/go-authgate/authsync/internal/core"
)

// Ensure CredentialHandler implements core.CallbackHandler at compile time
var _ core.CallbackHandler = (*CredentialHandler)(nil)

// CredentialHandler answers backend callbacks from a single credential.
type CredentialHandler struct {
	credential core.Credential
}

// NewCredentialHandler creates a handler that reads from cred.
func NewCredentialHandler(cred core.Credential) *CredentialHandler {
	return &CredentialHandler{credential: cred}
}

// Handle fills name and password callbacks from the credential. Other
// callbacks receive the secret if they implement core.ValueSetter and are
// skipped otherwise; an unanswered callback is for the backend to reject.
func (h *CredentialHandler) Handle(ctx context.Context, callbacks []core.Callback) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, cb := range callbacks {
		switch c := cb.(type) {
		case *NameCallback:
			c.SetName(h.credential.LoginID)
		case *PasswordCallback:
			c.SetPassword([]byte(h.credential.Secret))
		case core.ValueSetter:
			c.SetValue(h.credential.Secret)
		default:
			// unsupported, skip
		}
	}
	return nil
}
