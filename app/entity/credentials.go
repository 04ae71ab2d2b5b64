package entity

import (
	"sort"
	"strings"
)

// Credentials holds the key pair for one payment gateway. The test pair is
// optional and is stored verbatim; dispatch always uses the live pair.
type Credentials struct {
	PublicKey  string `json:"publicKey"`
	Secret     string `json:"secret"`
	TestKey    string `json:"testKey,omitempty"`
	TestSecret string `json:"testSecret,omitempty"`
}

// Configured reports whether the gateway has a usable live key pair.
func (c Credentials) Configured() bool {
	return strings.TrimSpace(c.PublicKey) != "" && strings.TrimSpace(c.Secret) != ""
}

// GlobalSettings is the per-user settings file shared across projects.
type GlobalSettings struct {
	Providers map[string]Credentials `json:"providers,omitempty"`
	URLs      *CallbackURLs          `json:"urls,omitempty"`
}

// ConfiguredProviders returns the names of providers with a live key pair,
// sorted for stable prompt and copy order.
func (s *GlobalSettings) ConfiguredProviders() []string {
	names := make([]string, 0, len(s.Providers))
	for name, creds := range s.Providers {
		if creds.Configured() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
