package provider

import (
	"errors"
	"sort"
	"strings"
)

var ErrProviderNotSupported = errors.New("provider is not supported")

// Registry maps provider names to handlers. It is assembled once at
// startup; unknown names fail with a typed error instead of a runtime
// lookup fault.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	items := make(map[string]Provider, len(providers))
	for _, p := range providers {
		items[p.Name()] = p
	}
	return &Registry{providers: items}
}

// DefaultRegistry returns a registry holding every built-in gateway.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewPaygateProvider(),
		NewPaypalProvider(),
		NewPayuProvider(),
		NewSagepayProvider(),
		NewStripeProvider(),
		NewWorldpayProvider(),
	)
}

// Get resolves a provider by name, case-insensitively.
func (r *Registry) Get(name string) (Provider, error) {
	provider, ok := r.providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrProviderNotSupported
	}
	return provider, nil
}

// Names lists the registered provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
