package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	MenuFile string `yaml:"menu_file"`
	BillDir  string `yaml:"bill_dir"`
	Currency string `yaml:"currency"`
	LogLevel string `yaml:"log_level"`
}

// Load resolves configuration in three layers: YAML file (if present),
// then environment variables, then built-in defaults. A missing config
// file is not an error; a file that exists but does not parse is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MenuFile: "menu.json",
		BillDir:  ".",
		Currency: "₹",
		LogLevel: "info",
	}

	path := getEnv("CAFE_CONFIG", "cafe.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.MenuFile = getEnv("MENU_FILE", cfg.MenuFile)
	cfg.BillDir = getEnv("BILL_DIR", cfg.BillDir)
	cfg.Currency = getEnv("CURRENCY", cfg.Currency)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
