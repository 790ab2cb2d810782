package auth

import (
	"sort"

	"github.com/go-authgate/authsync/internal/core"
)

var (
	_ core.Principal = UserPrincipal("")
	_ core.Group     = (*GroupPrincipal)(nil)
)

// UserPrincipal is a plain named identity.
type UserPrincipal string

func (p UserPrincipal) Name() string { return string(p) }

// GroupPrincipal is a named container of member principals.
type GroupPrincipal struct {
	GroupName string
	members   []core.Principal
}

// NewGroupPrincipal creates a group whose members are user principals
// with the given names, in order.
func NewGroupPrincipal(name string, memberNames ...string) *GroupPrincipal {
	g := &GroupPrincipal{GroupName: name}
	for _, m := range memberNames {
		g.AddMember(UserPrincipal(m))
	}
	return g
}

func (g *GroupPrincipal) Name() string { return g.GroupName }

func (g *GroupPrincipal) AddMember(p core.Principal) {
	g.members = append(g.members, p)
}

// Members returns the direct members in insertion order.
func (g *GroupPrincipal) Members() ([]core.Principal, error) {
	out := make([]core.Principal, len(g.members))
	copy(out, g.members)
	return out, nil
}

// sortedKeys returns the group names of m in sorted order so subjects built
// from JSON objects are deterministic.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
