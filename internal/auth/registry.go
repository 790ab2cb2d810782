package auth

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-authgate/authsync/internal/core"
)

// Registry maps backend domain names to login backends.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]core.LoginBackend
}

func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]core.LoginBackend)}
}

// Register binds backend to domain, replacing any previous binding.
func (r *Registry) Register(domain string, backend core.LoginBackend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[domain] = backend
}

// Lookup returns the backend bound to domain. An unknown domain is a
// login failure, not a configuration panic.
func (r *Registry) Lookup(domain string) (core.LoginBackend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	backend, ok := r.backends[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}
	return backend, nil
}

// Domains lists the registered domain names in sorted order.
func (r *Registry) Domains() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.backends))
	for d := range r.backends {
		names = append(names, d)
	}
	sort.Strings(names)
	return names
}
