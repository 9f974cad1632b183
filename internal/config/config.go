package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field maps to
// one environment variable.  Required values are enforced by must()
// and cause the process to exit when missing; optional values fall
// back to defaults suitable for a local demo deployment.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DataFile     string // path of the JSON document store
	JWTSecret    string // secret used to sign access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
}

// Load reads configuration from the environment and returns a Config.
// APP_ENV, APP_PORT and JWT_SECRET are required; the store path, the
// token TTL and the bcrypt cost have defaults.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DataFile:     getenv("DATA_FILE", "data/db.json"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: atoiDefault(os.Getenv("ACCESS_TOKEN_TTL_MIN"), 12*60),
		BcryptCost:   atoiDefault(os.Getenv("BCRYPT_COST"), 10),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// atoiDefault converts s to an int, returning def when s is empty or
// not a number.
func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
