package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the per-column sanitization rules applied while copying
// rows into the destination database, plus table-name aliases usable in
// selection arguments.
type Config struct {
	TableAlias [][]string `toml:"table_alias"`
	Tables     []Table    `toml:"tables"`
}

// Table maps column names to their sanitization settings.
type Table map[string]Column

// Column configures one column. Sanitize names the sanitizer to run on
// the column's values; empty means copy verbatim.
type Column struct {
	Sanitize string `toml:"sanitize,omitempty"`
}

// DefaultPath returns ~/.config/seed/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "seed", "config.toml"), nil
}

// Load reads and decodes a TOML config file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config back out as TOML, creating parent directories
// as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ResolveTable maps a table alias to its canonical name. Names without
// an alias entry pass through unchanged.
func (c *Config) ResolveTable(name string) string {
	for _, pair := range c.TableAlias {
		if len(pair) == 2 && pair[0] == name {
			return pair[1]
		}
	}
	return name
}
