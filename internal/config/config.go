package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the server binary. Every field can come from YAML and be
// overridden by an AQALA_* environment variable; a missing file just yields
// the defaults.
type Config struct {
	Addr          string `yaml:"addr"`
	Env           string `yaml:"env"`
	LogLevel      string `yaml:"logLevel"`
	SQLitePath    string `yaml:"sqlitePath"`
	StaticDir     string `yaml:"staticDir"`
	Locale        string `yaml:"locale"`
	SessionSecret string `yaml:"sessionSecret"`
}

func defaults() Config {
	return Config{
		Addr:   ":8080",
		Env:    "development",
		Locale: "ar",
	}
}

// Load reads the YAML file at path when it exists, then applies environment
// overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if v := os.Getenv("AQALA_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("AQALA_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("AQALA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("AQALA_SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv("AQALA_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("AQALA_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("AQALA_SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	return cfg, nil
}
