package mcconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-mcproto/corejava/mcconfig"
)

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "listen_addr: \":25566\"\nmotd: \"A Server\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := mcconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":25566" {
		t.Fatalf("got ListenAddr %q, want %q", cfg.ListenAddr, ":25566")
	}
	if cfg.MOTD != "A Server" {
		t.Fatalf("got MOTD %q, want %q", cfg.MOTD, "A Server")
	}
	if cfg.CompressionThreshold != -1 {
		t.Fatalf("got CompressionThreshold %d, want -1 (default)", cfg.CompressionThreshold)
	}
	if cfg.ProtocolVersion != 757 {
		t.Fatalf("got ProtocolVersion %d, want 757 (default)", cfg.ProtocolVersion)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := mcconfig.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
