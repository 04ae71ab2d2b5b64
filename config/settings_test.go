package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/transactify/transactify/app/entity"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	settings := LoadSettings(path)
	if settings == nil {
		t.Fatal("expected settings")
	}
	if len(settings.Providers) != 0 {
		t.Fatalf("expected empty providers, got %d", len(settings.Providers))
	}
}

func TestLoadSettingsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	settings := LoadSettings(path)
	if len(settings.Providers) != 0 {
		t.Fatalf("expected empty providers for corrupt file, got %d", len(settings.Providers))
	}
}

func TestSaveAndLoadSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")

	settings := &entity.GlobalSettings{
		Providers: map[string]entity.Credentials{
			"stripe": {PublicKey: "pk", Secret: "sk", TestKey: "tk", TestSecret: "ts"},
		},
		URLs: &entity.CallbackURLs{
			ReturnURL: "https://shop.test/return",
			CancelURL: "https://shop.test/cancel",
			NotifyURL: "https://shop.test/notify",
		},
	}

	if err := SaveSettings(path, settings); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := LoadSettings(path)
	creds := reloaded.Providers["stripe"]
	if creds.PublicKey != "pk" || creds.Secret != "sk" || creds.TestKey != "tk" || creds.TestSecret != "ts" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
	if reloaded.URLs == nil || reloaded.URLs.NotifyURL != "https://shop.test/notify" {
		t.Fatalf("unexpected urls: %+v", reloaded.URLs)
	}
}

func TestConfiguredProviders(t *testing.T) {
	settings := &entity.GlobalSettings{
		Providers: map[string]entity.Credentials{
			"stripe": {PublicKey: "pk", Secret: "sk"},
			"paypal": {PublicKey: "pk"},
		},
	}

	configured := settings.ConfiguredProviders()
	if len(configured) != 1 || configured[0] != "stripe" {
		t.Fatalf("expected only stripe configured, got %v", configured)
	}
}
