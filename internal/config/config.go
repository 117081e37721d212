package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pennywise-dev/pennywise/internal/importer"
)

// FileName is the workspace config file name.
const FileName = "pennywise.yaml"

// Environment overrides applied by ApplyEnv.
const (
	EnvDBPath      = "PENNYWISE_DB_PATH"
	EnvLogLevel    = "PENNYWISE_LOG_LEVEL"
	EnvDefaultBank = "PENNYWISE_DEFAULT_BANK"
)

// Config represents the top-level pennywise.yaml configuration.
type Config struct {
	Profile  ProfileConfig  `yaml:"profile"`
	Import   ImportConfig   `yaml:"import"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Git      GitConfig      `yaml:"git"`
}

// ProfileConfig identifies the workspace owner.
type ProfileConfig struct {
	Name string `yaml:"name"`
}

// ImportConfig controls statement imports.
type ImportConfig struct {
	DefaultBank string    `yaml:"default_bank"`
	Accounts    []Account `yaml:"accounts,omitempty"`
}

// Account labels the transactions imported from one institution.
type Account struct {
	Name string `yaml:"name"`
	Bank string `yaml:"bank"`
}

// DatabaseConfig locates the transaction store.
type DatabaseConfig struct {
	Path string `yaml:"path"` // relative to the workspace root
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format,omitempty"` // "console" (default) or "json"
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a pennywise.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(name string) *Config {
	return &Config{
		Profile: ProfileConfig{Name: name},
		Import: ImportConfig{
			DefaultBank: "generic",
		},
		Database: DatabaseConfig{Path: "pennywise.db"},
		Log:      LogConfig{Level: "info"},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Pennywise",
			AuthorEmail: "pennywise@localhost",
		},
	}
}

// ApplyEnv overrides config values from the environment.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvDefaultBank); v != "" {
		cfg.Import.DefaultBank = v
	}
}

// AccountFor returns the configured account label for an institution, or "".
// Configured bank names may use any alias the importer accepts.
func (c *Config) AccountFor(inst importer.Institution) string {
	for _, a := range c.Import.Accounts {
		if got, err := importer.ParseInstitution(a.Bank); err == nil && got == inst {
			return a.Name
		}
	}
	return ""
}
