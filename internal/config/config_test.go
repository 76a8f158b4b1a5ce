package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	content := `
[server]
name = "Test Arena"

[network]
tick_rate = "100ms"

[combat]
max_level = 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Name != "Test Arena" {
		t.Fatalf("name = %q", cfg.Server.Name)
	}
	if cfg.Network.TickRate != 100*time.Millisecond {
		t.Fatalf("tick rate = %v, want 100ms", cfg.Network.TickRate)
	}
	if cfg.Combat.MaxLevel != 10 {
		t.Fatalf("max level = %d, want 10", cfg.Combat.MaxLevel)
	}

	// Untouched keys keep their defaults.
	if cfg.Network.BindAddress != "0.0.0.0:7350" {
		t.Fatalf("bind address default lost: %q", cfg.Network.BindAddress)
	}
	if cfg.Combat.XPScaling != 1.5 {
		t.Fatalf("xp scaling default lost: %v", cfg.Combat.XPScaling)
	}
	if cfg.Server.StartTime == 0 {
		t.Fatal("start time should be stamped at load")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("missing config must be an error")
	}
}
