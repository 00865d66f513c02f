package config

import (
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Content sources
const (
	SourceFS       = "fs"
	SourcePostgres = "postgres"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	TablePrefix string
	// Site
	SiteBaseURL   string
	DefaultLocale string
	// Content source
	ContentSource string
	ContentDir    string
	ContentWatch  bool
	DatabaseURL   string
	// Auth (optional - without a JWKS URL every request is a visitor)
	JWKSURL string
	// Navigation policies
	MaxDepth      int  // 0 = unbounded
	HideInvisible bool // drop visible=false items for non-admin roles
	// Logging
	LogDir      string
	LogMaxFiles int
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   env,
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:   getTablePrefix(env),
		SiteBaseURL:   getEnv("SITE_BASE_URL", ""),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		ContentSource: getEnv("CONTENT_SOURCE", SourceFS),
		ContentDir:    getEnv("CONTENT_DIR", "./content"),
		ContentWatch:  getEnv("CONTENT_WATCH", getDefaultDebug(env)) == "true",
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWKSURL:       getEnv("JWKS_URL", ""),
		MaxDepth:      getEnvInt("NAV_MAX_DEPTH", 0),
		HideInvisible: getEnv("NAV_HIDE_INVISIBLE", "true") == "true",
		LogDir:        getEnv("LOG_DIR", ""),
		LogMaxFiles:   getEnvInt("LOG_MAX_FILES", DefaultLogMaxFiles),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// Validate checks settings that would otherwise fail later at startup
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.ContentSource,
			validation.Required,
			validation.In(SourceFS, SourcePostgres).Error("must be 'fs' or 'postgres'"),
		),
		validation.Field(&c.ContentDir,
			validation.When(c.ContentSource == SourceFS, validation.Required),
		),
		validation.Field(&c.DatabaseURL,
			validation.When(c.ContentSource == SourcePostgres, validation.Required.Error("is required for the postgres content source")),
		),
		validation.Field(&c.MaxDepth, validation.Min(0), validation.Max(MaxNavigationDepth)),
		validation.Field(&c.LogMaxFiles, validation.Min(1)),
	)
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
