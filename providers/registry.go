package providers

import (
	"sort"
	"sync"

	"github.com/jrsteele09/go-oauth-client/internal/errors"
)

// Registry is an in-memory provider store keyed by provider name.
// Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry initializes a Registry preloaded with the given providers.
func NewRegistry(providers ...Provider) (*Registry, error) {
	registry := &Registry{providers: map[string]Provider{}}
	for _, provider := range providers {
		if err := registry.Upsert(provider); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Upsert creates or updates a provider
func (r *Registry) Upsert(provider Provider) error {
	if err := provider.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.Name] = provider
	return nil
}

// Get retrieves a provider by name
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[name]
	if !ok {
		return Provider{}, errors.Wrapf(errors.ErrProviderNotFound, "provider %q", name)
	}
	return provider, nil
}

// Delete removes a provider by name
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return errors.Wrapf(errors.ErrProviderNotFound, "provider %q", name)
	}
	delete(r.providers, name)
	return nil
}

// List returns every registered provider sorted by name
func (r *Registry) List() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Provider, 0, len(r.providers))
	for _, provider := range r.providers {
		list = append(list, provider)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
