package entity

// CallbackURLs are the redirect/notification targets handed to providers
// that support hosted flows.
type CallbackURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
	NotifyURL string `json:"notify_url"`
}

// ProjectManifest is the per-project .transactify.json file: the provider
// credentials copied from the global settings at init time, the product
// price catalogue, and the callback URLs. The file on disk is the sole
// source of truth; it is re-read on every charge.
type ProjectManifest struct {
	Providers  map[string]Credentials `json:"providers"`
	PriceIndex PriceIndex             `json:"priceIndex"`
	URLs       CallbackURLs           `json:"urls"`
}

// NewProjectManifest builds a manifest holding only the configured
// providers from settings, an empty catalogue, and the settings URLs when
// present.
func NewProjectManifest(settings *GlobalSettings) *ProjectManifest {
	manifest := &ProjectManifest{
		Providers:  map[string]Credentials{},
		PriceIndex: PriceIndex{},
	}
	for _, name := range settings.ConfiguredProviders() {
		manifest.Providers[name] = settings.Providers[name]
	}
	if settings.URLs != nil {
		manifest.URLs = *settings.URLs
	}
	return manifest
}
