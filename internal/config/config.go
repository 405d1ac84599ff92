// Package config loads the service.toml / client.toml configuration
// documents, following the teacher's load-then-validate shape.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ServiceConfig is the host application's side of the console.
type ServiceConfig struct {
	InstanceName string   `toml:"instance_name"`
	Addr         string   `toml:"addr"`
	AdminAddr    string   `toml:"admin_addr"`
	CORSOrigins  []string `toml:"cors_origins"`
}

// ClientConfig is the interactive terminal client's side.
type ClientConfig struct {
	InstanceName string `toml:"instance_name"`
	Verbose      bool   `toml:"verbose"`
}

// LoadServiceConfig reads and validates a service.toml document,
// applying defaults for Addr and AdminAddr when absent.
func LoadServiceConfig(path string) (ServiceConfig, error) {
	var cfg ServiceConfig
	if err := loadToml(path, &cfg); err != nil {
		return ServiceConfig{}, err
	}
	if cfg.Addr == "" {
		cfg.Addr = ":9000"
	}
	if cfg.AdminAddr == "" {
		cfg.AdminAddr = ":9001"
	}
	if err := ValidateServiceConfig(cfg); err != nil {
		return ServiceConfig{}, err
	}
	return cfg, nil
}

// LoadClientConfig reads and validates a client.toml document.
func LoadClientConfig(path string) (ClientConfig, error) {
	var cfg ClientConfig
	if err := loadToml(path, &cfg); err != nil {
		return ClientConfig{}, err
	}
	if err := ValidateClientConfig(cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if _, err := toml.Decode(string(data), out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// ValidateServiceConfig checks the invariants a running service needs.
func ValidateServiceConfig(cfg ServiceConfig) error {
	if strings.TrimSpace(cfg.InstanceName) == "" {
		return fmt.Errorf("service config missing instance_name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("service config missing addr")
	}
	return nil
}

// ValidateClientConfig checks the invariants a client needs.
func ValidateClientConfig(cfg ClientConfig) error {
	if strings.TrimSpace(cfg.InstanceName) == "" {
		return fmt.Errorf("client config missing instance_name")
	}
	return nil
}
