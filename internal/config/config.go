// Package config collects the runtime options for the server from the
// environment, with optional .env support for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port is the HTTP listen port.
	Port string

	// DatabaseURL is the Postgres connection string; empty means the
	// server runs on the file-backed visibility store only.
	DatabaseURL string

	// RenderServiceURL points at the external PDF renderer; empty
	// selects the local headless-Chrome fallback.
	RenderServiceURL string

	// TemplateDir holds the HTML export templates.
	TemplateDir string

	// DataDir receives generated artifacts and, without a database,
	// visibility snapshot files.
	DataDir string
}

// Parse reads .env (if present) and the environment.
func Parse() *Options {
	_ = godotenv.Load()

	opts := &Options{
		Port:             getenv("PORT", "3000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RenderServiceURL: os.Getenv("RENDER_SERVICE_URL"),
		TemplateDir:      getenv("TEMPLATE_DIR", "templates"),
		DataDir:          getenv("DATA_DIR", "data"),
	}
	return opts
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
