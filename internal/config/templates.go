package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(dumpTemplate), 0o600)
}

const dumpTemplate = `input = "capture.bin"
hex_input = false
log_level = "info"
pretty_json = false
`
