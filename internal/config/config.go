package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DumpConfig configures the vertxdump tool.
type DumpConfig struct {
	Input      string `toml:"input"`       // capture file to read
	HexInput   bool   `toml:"hex_input"`   // input is hex text rather than raw bytes
	LogLevel   string `toml:"log_level"`   // trace|debug|info|warn|error|disabled
	PrettyJSON bool   `toml:"pretty_json"` // indent jsonobject/jsonarray bodies
}

func LoadDumpConfig(path string) (DumpConfig, error) {
	var cfg DumpConfig
	if err := loadToml(path, &cfg); err != nil {
		return DumpConfig{}, err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if err := ValidateDumpConfig(cfg); err != nil {
		return DumpConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateDumpConfig(cfg DumpConfig) error {
	switch strings.ToLower(strings.TrimSpace(cfg.LogLevel)) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "disable", "off", "none":
	default:
		return fmt.Errorf("config log_level %q not recognized", cfg.LogLevel)
	}
	return nil
}
