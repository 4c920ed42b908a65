package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The catalog is deliberately small: an HTTP port,
// the path of the SQLite database file and the default page size for the
// product listing API.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBPath       string // path to the SQLite database file
	DefaultLimit int    // default `limit` for GET /api/product/ (documented default: 10)
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),                       // environment (dev/test/prod)
		Port:         must("APP_PORT"),                      // port to bind the HTTP server
		DBPath:       must("DB_PATH"),                       // SQLite database file location
		DefaultLimit: atoiDefault("DEFAULT_PAGE_LIMIT", 10), // listing page size when ?limit is absent
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// atoiDefault reads an optional integer variable, falling back to def when
// the variable is unset or not a valid positive integer.
func atoiDefault(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		log.Printf("invalid int for %s: %q, using default %d", key, s, def)
		return def
	}
	return n
}
