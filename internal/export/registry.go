package export

import (
	"fmt"
	"sort"
	"sync"

	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

// Registry holds exporter templates by name. Templates are immutable once
// registered, so reads need no copying; the lock only guards the map.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Template)}
}

// DefaultRegistry creates a registry preloaded with the built-in exporters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, t := range builtinTemplates() {
		if err := r.Register(t); err != nil {
			panic(fmt.Sprintf("export: builtin registration: %v", err))
		}
	}
	return r
}

// Register adds a template. Registering a name twice is an error.
func (r *Registry) Register(t *Template) error {
	if t == nil {
		return tinterrors.NewTemplateParseError("", "template is nil", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[t.Name()]; exists {
		return tinterrors.NewDuplicateKeyError(t.Name())
	}

	r.templates[t.Name()] = t
	return nil
}

// Get retrieves a template by name.
func (r *Registry) Get(name string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[name]
	if !ok {
		return nil, tinterrors.NewTemplateParseError(name, "no exporter registered under this name", nil)
	}
	return t, nil
}

// Names lists registered template names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
