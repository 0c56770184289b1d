package config

import "os"

type Config struct {
	DatabaseURL string
	Port        string
	UploadsDir  string
	CORSOrigin  string
}

// Load reads configuration from the environment. DatabaseURL may be empty,
// in which case the server falls back to the in-memory store.
func Load() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		UploadsDir:  os.Getenv("UPLOADS_DIR"),
		CORSOrigin:  os.Getenv("CORS_ORIGIN"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "uploads"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}
	return cfg
}
