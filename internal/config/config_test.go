package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vertxdump.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDumpConfigDefaults(t *testing.T) {
	path := writeConfig(t, `input = "frames.bin"`)
	cfg, err := LoadDumpConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input != "frames.bin" {
		t.Fatalf("input: %q", cfg.Input)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level default: %q", cfg.LogLevel)
	}
	if cfg.HexInput || cfg.PrettyJSON {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
}

func TestLoadDumpConfigRejectsBadLevel(t *testing.T) {
	path := writeConfig(t, `log_level = "shouty"`)
	if _, err := LoadDumpConfig(path); err == nil {
		t.Fatalf("expected log_level validation error")
	}
}

func TestLoadDumpConfigMissingFile(t *testing.T) {
	if _, err := LoadDumpConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vertxdump.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if _, err := LoadDumpConfig(path); err != nil {
		t.Fatalf("template does not load: %v", err)
	}
}
