package roles

import (
	"errors"
	"testing"

	"github.com/go-authgate/authsync/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user string

func (u user) Name() string { return string(u) }

type group struct {
	name    string
	members []core.Principal
	err     error
}

func (g *group) Name() string                       { return g.name }
func (g *group) Members() ([]core.Principal, error) { return g.members, g.err }

func newGroup(name string, members ...string) *group {
	g := &group{name: name}
	for _, m := range members {
		g.members = append(g.members, user(m))
	}
	return g
}

func TestMarkerGroupExtractor(t *testing.T) {
	tests := []struct {
		name     string
		subject  *core.Subject
		marker   string
		expected []string
	}{
		{
			name: "exact match",
			subject: &core.Subject{Principals: []core.Principal{
				user("alice"),
				newGroup("Roles", "admin", "user"),
				newGroup("Other", "x"),
			}},
			marker:   "Roles",
			expected: []string{"admin", "user"},
		},
		{
			name: "case-insensitive match",
			subject: &core.Subject{Principals: []core.Principal{
				newGroup("ROLES", "admin"),
			}},
			marker:   "roles",
			expected: []string{"admin"},
		},
		{
			name: "first matching group wins",
			subject: &core.Subject{Principals: []core.Principal{
				newGroup("roles", "first"),
				newGroup("Roles", "second"),
			}},
			marker:   "Roles",
			expected: []string{"first"},
		},
		{
			name: "duplicates kept in order",
			subject: &core.Subject{Principals: []core.Principal{
				newGroup("Roles", "b", "a", "b"),
			}},
			marker:   "Roles",
			expected: []string{"b", "a", "b"},
		},
		{
			name: "no matching group",
			subject: &core.Subject{Principals: []core.Principal{
				user("Roles"),
				newGroup("Groups", "admin"),
			}},
			marker:   "Roles",
			expected: []string{},
		},
		{
			name:     "empty subject",
			subject:  &core.Subject{},
			marker:   "Roles",
			expected: []string{},
		},
		{
			name:     "nil subject",
			subject:  nil,
			marker:   "Roles",
			expected: []string{},
		},
		{
			name: "empty marker group",
			subject: &core.Subject{Principals: []core.Principal{
				newGroup("Roles"),
			}},
			marker:   "Roles",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles, err := MarkerGroupExtractor{}.Extract(tt.subject, tt.marker)
			require.NoError(t, err)
			require.NotNil(t, roles)
			assert.Equal(t, tt.expected, roles)
		})
	}
}

func TestMarkerGroupExtractor_Malformed(t *testing.T) {
	t.Run("nil principal", func(t *testing.T) {
		subject := &core.Subject{Principals: []core.Principal{nil}}
		_, err := MarkerGroupExtractor{}.Extract(subject, "Roles")
		assert.ErrorIs(t, err, ErrRoleExtraction)
	})

	t.Run("typed nil group", func(t *testing.T) {
		subject := &core.Subject{Principals: []core.Principal{(*group)(nil)}}
		var (
			roles []string
			err   error
		)
		require.NotPanics(t, func() {
			roles, err = MarkerGroupExtractor{}.Extract(subject, "Roles")
		})
		assert.ErrorIs(t, err, ErrRoleExtraction)
		assert.Nil(t, roles)
	})

	t.Run("members error", func(t *testing.T) {
		subject := &core.Subject{Principals: []core.Principal{
			&group{name: "Roles", err: errors.New("directory unavailable")},
		}}
		_, err := MarkerGroupExtractor{}.Extract(subject, "Roles")
		assert.ErrorIs(t, err, ErrRoleExtraction)
		assert.Contains(t, err.Error(), "directory unavailable")
	})

	t.Run("nil member", func(t *testing.T) {
		subject := &core.Subject{Principals: []core.Principal{
			&group{name: "Roles", members: []core.Principal{user("a"), nil}},
		}}
		_, err := MarkerGroupExtractor{}.Extract(subject, "Roles")
		assert.ErrorIs(t, err, ErrRoleExtraction)
	})

	t.Run("broken non-marker group is ignored", func(t *testing.T) {
		subject := &core.Subject{Principals: []core.Principal{
			&group{name: "Other", err: errors.New("boom")},
			newGroup("Roles", "admin"),
		}}
		roles, err := MarkerGroupExtractor{}.Extract(subject, "Roles")
		require.NoError(t, err)
		assert.Equal(t, []string{"admin"}, roles)
	})
}

func TestAllGroupsExtractor(t *testing.T) {
	subject := &core.Subject{Principals: []core.Principal{
		user("alice"),
		newGroup("Roles", "admin"),
		newGroup("Other", "x"),
	}}

	roles, err := AllGroupsExtractor{}.Extract(subject, "ignored")
	require.NoError(t, err)
	assert.Equal(t, []string{"Roles", "Other"}, roles)

	roles, err = AllGroupsExtractor{}.Extract(&core.Subject{Principals: []core.Principal{user("a")}}, "")
	require.NoError(t, err)
	assert.NotNil(t, roles)
	assert.Empty(t, roles)

	_, err = AllGroupsExtractor{}.Extract(&core.Subject{Principals: []core.Principal{nil}}, "")
	assert.ErrorIs(t, err, ErrRoleExtraction)

	require.NotPanics(t, func() {
		_, err = AllGroupsExtractor{}.Extract(&core.Subject{Principals: []core.Principal{(*group)(nil)}}, "")
	})
	assert.ErrorIs(t, err, ErrRoleExtraction)
}
