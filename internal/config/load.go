// internal/config/load.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load resolves the configuration for one interface.
// It looks for <dir>/<iface>.yaml. A missing file is not an error:
// the defaults apply. A file that exists but does not parse is fatal.
func Load(dir, iface string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, iface+".yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Unmarshal over the defaults: keys absent from the file keep
	// their default values.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}
