package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Values with sensible defaults (port, admin
// bootstrap credentials, bcrypt cost) fall back when unset; database and
// JWT settings are required.
type Config struct {
	Env           string // application environment (dev/test/prod)
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	DBMaxConns    int    // connection pool size (open and idle)
	JWTSecret     string // secret used to sign access tokens
	AccessTTLMin  int    // access token time-to-live in minutes
	BcryptCost    int    // bcrypt cost for password hashing
	AdminEmail    string // well-known administrator email ensured at startup
	AdminPassword string // default administrator password for first boot
	SeedSamples   bool   // seed example facilities/tickets when catalog is empty
}

// Load reads configuration from the environment. Missing required
// variables cause the process to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8080"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        must("DB_HOST"),
		DBPort:        getenv("DB_PORT", "3306"),
		DBName:        must("DB_NAME"),
		DBMaxConns:    getint("DB_MAX_CONNS", 25),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  getint("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:    getint("BCRYPT_COST", 10),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@parkpass.io"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin1234"),
		SeedSamples:   getenv("SEED_SAMPLE_DATA", "true") == "true",
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
