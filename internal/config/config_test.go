package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadServiceConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.toml")
	if err := os.WriteFile(path, []byte(`instance_name = "demo-host"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadServiceConfig(path)
	if err != nil {
		t.Fatalf("LoadServiceConfig: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Addr)
	}
	if cfg.AdminAddr != ":9001" {
		t.Errorf("AdminAddr = %q, want :9001", cfg.AdminAddr)
	}
}

func TestLoadServiceConfigMissingInstanceName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.toml")
	if err := os.WriteFile(path, []byte(`addr = ":9000"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadServiceConfig(path); err == nil {
		t.Fatal("expected validation error for missing instance_name")
	}
}

func TestLoadClientConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.toml")
	if err := os.WriteFile(path, []byte("instance_name = \"demo-host\"\nverbose = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadClientConfig(path)
	if err != nil {
		t.Fatalf("LoadClientConfig: %v", err)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}
