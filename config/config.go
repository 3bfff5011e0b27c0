package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/united-manufacturing-hub/umh-utils/env"
)

// Supported document store drivers
const (
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
	DriverSQLite    = "sqlite"
)

// Config holds the process configuration read from the environment
type Config struct {
	Port            string
	LogLevel        string
	Database        Database
	CORSOrigins     []string
	RecentWindow    time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Database selects and parameterizes the document store backend
type Database struct {
	Driver             string
	MongoURL           string
	Name               string
	SQLitePath         string
	FirestoreProjectID string
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments inject variables directly
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Port, _ = env.GetAsString("PORT", false, "8001")                    //nolint:errcheck
	cfg.LogLevel, _ = env.GetAsString("LOGGING_LEVEL", false, "PRODUCTION") //nolint:errcheck

	cfg.Database.MongoURL, _ = env.GetAsString("MONGO_URL", false, "")                      //nolint:errcheck
	cfg.Database.Name, _ = env.GetAsString("DB_NAME", false, "portfolio")                   //nolint:errcheck
	cfg.Database.SQLitePath, _ = env.GetAsString("SQLITE_PATH", false, "portfolio.db")      //nolint:errcheck
	cfg.Database.FirestoreProjectID, _ = env.GetAsString("FIRESTORE_PROJECT_ID", false, "") //nolint:errcheck

	defaultDriver := DriverSQLite
	if cfg.Database.MongoURL != "" {
		defaultDriver = DriverMongo
	}
	cfg.Database.Driver, _ = env.GetAsString("DB_DRIVER", false, defaultDriver) //nolint:errcheck
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))

	origins, _ := env.GetAsString("CORS_ORIGINS", false, "*") //nolint:errcheck
	cfg.CORSOrigins = splitOrigins(origins)

	window, _ := env.GetAsString("RESUME_RECENT_WINDOW", false, "720h") //nolint:errcheck
	recent, err := time.ParseDuration(window)
	if err != nil {
		return nil, fmt.Errorf("invalid RESUME_RECENT_WINDOW %q: %w", window, err)
	}
	cfg.RecentWindow = recent

	requestTimeout, _ := env.GetAsInt("REQUEST_TIMEOUT_SECONDS", false, 60)  //nolint:errcheck
	shutdownTimeout, _ := env.GetAsInt("SHUTDOWN_TIMEOUT_SECONDS", false, 5) //nolint:errcheck
	cfg.RequestTimeout = time.Duration(requestTimeout) * time.Second
	cfg.ShutdownTimeout = time.Duration(shutdownTimeout) * time.Second

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the selected driver has what it needs
func (c *Config) Validate() error {
	if c.RecentWindow <= 0 {
		return fmt.Errorf("RESUME_RECENT_WINDOW must be positive, got %s", c.RecentWindow)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive")
	}

	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required for the %s driver", DriverMongo)
		}
	case DriverFirestore:
		if c.Database.FirestoreProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID is required for the %s driver", DriverFirestore)
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}

	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	return nil
}

// splitOrigins turns a comma separated list into trimmed, non-empty origins
func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
