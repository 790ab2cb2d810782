package roles

import (
	"fmt"
	"sync"
)

// Strategy names accepted by NewExtractor.
const (
	StrategyMarkerGroup = "marker_group"
	StrategyAllGroups   = "all_groups"
)

// NewExtractor returns the extractor for a strategy name.
func NewExtractor(strategy string) (Extractor, error) {
	switch strategy {
	case StrategyMarkerGroup:
		return MarkerGroupExtractor{}, nil
	case StrategyAllGroups:
		return AllGroupsExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown role strategy: %s", strategy)
	}
}

// Registry selects an extractor per backend type, falling back to a default.
type Registry struct {
	mu         sync.RWMutex
	defaultExt Extractor
	extractors map[string]Extractor
}

// NewRegistry creates a registry. A nil fallback means MarkerGroupExtractor.
func NewRegistry(fallback Extractor) *Registry {
	if fallback == nil {
		fallback = MarkerGroupExtractor{}
	}
	return &Registry{
		defaultExt: fallback,
		extractors: make(map[string]Extractor),
	}
}

// Register binds an extractor to a backend type.
func (r *Registry) Register(backendType string, ext Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[backendType] = ext
}

// For returns the extractor bound to backendType, or the default.
func (r *Registry) For(backendType string) Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ext, ok := r.extractors[backendType]; ok {
		return ext
	}
	return r.defaultExt
}
