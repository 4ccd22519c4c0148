package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strings" // strings splits comma separated lists
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
    Env            string   // application environment (e.g. "dev", "prod")
    Port           string   // HTTP port to listen on
    DBUser         string   // database username
    DBPass         string   // database password (optional)
    DBHost         string   // database host address
    DBPort         string   // database port number
    DBName         string   // database name
    JWTSecret      string   // secret used to sign JWTs
    AccessTTLMin   int      // access token time‑to‑live in minutes
    RefreshTTLDays int      // refresh token time‑to‑live in days
    BcryptCost     int      // bcrypt cost for password hashing
    CORSOrigins    []string // origins allowed to call the API with credentials
    EventsEnabled  bool     // publish booking events to RabbitMQ when true
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Token lifetimes and
// the bcrypt cost have defaults (15 minute access tokens, 7 day refresh
// tokens) and only need to be set when deviating from them.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),      // environment (dev/test/prod)
        Port:           must("APP_PORT"),     // port to bind the HTTP server
        DBUser:         must("DB_USER"),      // database user
        DBPass:         os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost:         must("DB_HOST"),      // database host
        DBPort:         must("DB_PORT"),      // database port
        DBName:         must("DB_NAME"),      // database name
        JWTSecret:      must("JWT_SECRET"),   // secret used for signing JWTs
        AccessTTLMin:   atoi(getenv("ACCESS_TOKEN_TTL_MIN", "15")),
        RefreshTTLDays: atoi(getenv("REFRESH_TOKEN_TTL_DAYS", "7")),
        BcryptCost:     atoi(getenv("BCRYPT_COST", "10")),
        CORSOrigins:    splitList(getenv("CORS_ORIGINS", "http://localhost:5173")),
        EventsEnabled:  getenv("BOOKING_EVENTS_ENABLED", "false") == "true",
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

// splitList breaks a comma separated environment value into trimmed,
// non-empty entries.
func splitList(s string) []string {
    var out []string
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
