package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	Port          string
	StoreDriver   string // file | sqlite | postgres | memory
	StoreDir      string // driver=file
	StoreDSN      string // driver=sqlite (path) or postgres (conn string)
	SessionSecret string
	Origin        string // CORS

	// Seed superuser, applied only when the users collection is empty.
	BootstrapUsername string
	BootstrapEmail    string
	BootstrapPassword string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	// Optional .env for local development; real env always wins.
	_ = godotenv.Load()

	return Config{
		Env:           env("APP_ENV", "dev"),
		Port:          env("API_PORT", "8080"),
		StoreDriver:   env("STORE_DRIVER", "file"),
		StoreDir:      env("STORE_DIR", "./data"),
		StoreDSN:      env("STORE_DSN", "./taskdesk.db"),
		SessionSecret: env("SESSION_SECRET", "dev-secret-change-me"),
		Origin:        env("CORS_ORIGIN", "http://localhost:3000"),

		BootstrapUsername: env("BOOTSTRAP_USERNAME", "root"),
		BootstrapEmail:    env("BOOTSTRAP_EMAIL", "root@taskdesk.local"),
		BootstrapPassword: env("BOOTSTRAP_PASSWORD", ""),
	}
}
