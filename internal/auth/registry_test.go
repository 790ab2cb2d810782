package auth

import (
	"testing"

	"github.com/go-authgate/authsync/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	backend, err := NewFileBackendFromUsers(nil)
	require.NoError(t, err)

	r := NewRegistry()
	r.Register("D", backend)

	got, err := r.Lookup("D")
	require.NoError(t, err)
	assert.Same(t, backend, got)
	assert.Equal(t, []string{"D"}, r.Domains())
}

func TestRegistry_UnknownDomainIsLoginFailure(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDomain)
	assert.ErrorIs(t, err, core.ErrLoginFailed)
}
