// Package config loads daemon configuration from TOML files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"mailwire/internal/flush"
)

// DaemonConfig configures the flushd daemon and its clients.
type DaemonConfig struct {
	Name        string
	Network     string
	Addr        string
	IPCTimeout  time.Duration
	FlushPolicy string
	Retention   time.Duration
}

type fileConfig struct {
	Name        string `toml:"name"`
	Network     string `toml:"network"`
	Addr        string `toml:"addr"`
	IPCTimeout  string `toml:"ipc_timeout"`
	FlushPolicy string `toml:"flush_policy"`
	Retention   string `toml:"retention"`
}

func DefaultDaemonConfig() DaemonConfig {
	return DaemonConfig{
		Name:        "flushd",
		Network:     "tcp",
		Addr:        "127.0.0.1:7525",
		IPCTimeout:  time.Hour,
		FlushPolicy: flush.PolicyAll,
		Retention:   12 * time.Hour,
	}
}

// LoadDaemonConfig reads path over the defaults. Fields absent from the
// file keep their default values.
func LoadDaemonConfig(path string) (DaemonConfig, error) {
	cfg := DefaultDaemonConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return DaemonConfig{}, fmt.Errorf("load daemon config: %w", err)
	}

	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("network") {
		cfg.Network = strings.TrimSpace(raw.Network)
	}
	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("ipc_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.IPCTimeout))
		if err != nil {
			return DaemonConfig{}, fmt.Errorf("parse ipc_timeout: %w", err)
		}
		cfg.IPCTimeout = d
	}
	if meta.IsDefined("flush_policy") {
		cfg.FlushPolicy = strings.TrimSpace(raw.FlushPolicy)
	}
	if meta.IsDefined("retention") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Retention))
		if err != nil {
			return DaemonConfig{}, fmt.Errorf("parse retention: %w", err)
		}
		cfg.Retention = d
	}

	if err := ValidateDaemonConfig(cfg); err != nil {
		return DaemonConfig{}, err
	}
	return cfg, nil
}

func ValidateDaemonConfig(cfg DaemonConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("daemon config missing name")
	}
	switch cfg.Network {
	case "tcp", "unix":
	default:
		return fmt.Errorf("daemon config network must be tcp or unix, have %q", cfg.Network)
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("daemon config missing addr")
	}
	if cfg.IPCTimeout <= 0 {
		return fmt.Errorf("daemon config ipc_timeout must be positive")
	}
	switch cfg.FlushPolicy {
	case flush.PolicyAll, flush.PolicyNone:
	default:
		return fmt.Errorf("daemon config flush_policy must be all or none, have %q", cfg.FlushPolicy)
	}
	if cfg.Retention <= 0 {
		return fmt.Errorf("daemon config retention must be positive")
	}
	return nil
}
