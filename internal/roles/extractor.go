package roles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-authgate/authsync/internal/core"
)

// ErrRoleExtraction is returned when a subject's principal graph cannot be read.
var ErrRoleExtraction = errors.New("role extraction failed")

// Extractor derives role names from an authenticated subject.
type Extractor interface {
	Extract(subject *core.Subject, marker string) ([]string, error)
}

// MarkerGroupExtractor reads roles from the members of a single marker group.
// The first top-level group whose name matches marker case-insensitively wins;
// its direct members are returned in order, duplicates kept.
type MarkerGroupExtractor struct{}

func (MarkerGroupExtractor) Extract(subject *core.Subject, marker string) (_ []string, err error) {
	defer recoverExtraction(&err)

	roles := []string{}
	if subject == nil {
		return roles, nil
	}

	for i, p := range subject.Principals {
		if p == nil {
			return nil, fmt.Errorf("%w: principal %d is nil", ErrRoleExtraction, i)
		}
		group, ok := p.(core.Group)
		if !ok || !strings.EqualFold(group.Name(), marker) {
			continue
		}
		return memberNames(group)
	}
	return roles, nil
}

// AllGroupsExtractor treats every top-level group name as a role.
type AllGroupsExtractor struct{}

func (AllGroupsExtractor) Extract(subject *core.Subject, _ string) (_ []string, err error) {
	defer recoverExtraction(&err)

	roles := []string{}
	if subject == nil {
		return roles, nil
	}

	for i, p := range subject.Principals {
		if p == nil {
			return nil, fmt.Errorf("%w: principal %d is nil", ErrRoleExtraction, i)
		}
		if group, ok := p.(core.Group); ok {
			roles = append(roles, group.Name())
		}
	}
	return roles, nil
}

func memberNames(group core.Group) ([]string, error) {
	members, err := group.Members()
	if err != nil {
		return nil, fmt.Errorf("%w: group %q: %v", ErrRoleExtraction, group.Name(), err)
	}

	names := make([]string, 0, len(members))
	for i, m := range members {
		if m == nil {
			return nil, fmt.Errorf("%w: group %q member %d is nil", ErrRoleExtraction, group.Name(), i)
		}
		names = append(names, m.Name())
	}
	return names, nil
}

// recoverExtraction turns a panic from a principal implementation, such as a
// typed nil pointer, into ErrRoleExtraction.
func recoverExtraction(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrRoleExtraction, r)
	}
}
