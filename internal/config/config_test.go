package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flushd.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDaemonConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
name = "flushd.test"
network = "unix"
addr = "/tmp/flushd.sock"
ipc_timeout = "30s"
flush_policy = "none"
retention = "1h"
`)
	cfg, err := LoadDaemonConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "flushd.test" {
		t.Fatalf("unexpected name: %q", cfg.Name)
	}
	if cfg.Network != "unix" || cfg.Addr != "/tmp/flushd.sock" {
		t.Fatalf("unexpected endpoint: %s %s", cfg.Network, cfg.Addr)
	}
	if cfg.IPCTimeout != 30*time.Second {
		t.Fatalf("unexpected ipc_timeout: %v", cfg.IPCTimeout)
	}
	if cfg.FlushPolicy != "none" {
		t.Fatalf("unexpected flush_policy: %q", cfg.FlushPolicy)
	}
	if cfg.Retention != time.Hour {
		t.Fatalf("unexpected retention: %v", cfg.Retention)
	}
}

func TestLoadDaemonConfigDefaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := LoadDaemonConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := DefaultDaemonConfig()
	if cfg != want {
		t.Fatalf("empty file must yield defaults: %+v", cfg)
	}
}

func TestLoadDaemonConfigRejectsBadNetwork(t *testing.T) {
	path := writeConfig(t, `network = "udp"`)
	if _, err := LoadDaemonConfig(path); err == nil {
		t.Fatalf("expected error for udp network")
	}
}

func TestLoadDaemonConfigRejectsBadPolicy(t *testing.T) {
	path := writeConfig(t, `flush_policy = "sometimes"`)
	if _, err := LoadDaemonConfig(path); err == nil {
		t.Fatalf("expected error for unknown flush policy")
	}
}

func TestLoadDaemonConfigRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, `ipc_timeout = "fast"`)
	if _, err := LoadDaemonConfig(path); err == nil {
		t.Fatalf("expected error for unparseable ipc_timeout")
	}
}

func TestLoadDaemonConfigMissingFile(t *testing.T) {
	if _, err := LoadDaemonConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
