package config

import (
	"log"
	"os"
)

const (
	defaultDBPath = "./luxone.db"
	defaultPort   = "8080"
	defaultAppEnv = "dev"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath string
	Port   string
	AppEnv string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		DBPath: os.Getenv("DB_PATH"),
		Port:   os.Getenv("PORT"),
		AppEnv: os.Getenv("APP_ENV"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.AppEnv == "" {
		log.Print("warning: APP_ENV is not set, assuming dev")
		cfg.AppEnv = defaultAppEnv
	}

	return cfg
}

// IsDev reports whether the app runs in local development mode, where
// migrations and the startup seed run automatically.
func (c Config) IsDev() bool {
	return c.AppEnv == defaultAppEnv
}
