package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage drivers.
const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// StorageDriver selects the media behind the storage scopes: "mongo"
	// (durable in MongoDB, session in Redis) or "memory" for both.
	StorageDriver string `env:"STORAGE_DRIVER, default=memory"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Session   SessionConfig
	Analytics AnalyticsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=onboarding"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	TTL             time.Duration `env:"SESSION_TTL,       default=30m"`
	DeviceCookieTTL time.Duration `env:"DEVICE_COOKIE_TTL, default=8760h"`
	MaxLive         int           `env:"MAX_LIVE_SESSIONS, default=10000"`
}

type AnalyticsConfig struct {
	// Enabled turns event recording on. When off the event log stays empty.
	Enabled bool `env:"ANALYTICS_ENABLED, default=true"`
	// Forward stores recorded events in MongoDB. Requires the mongo driver.
	Forward bool `env:"ANALYTICS_FORWARD, default=false"`
	Workers int  `env:"ANALYTICS_WORKERS, default=4"`
	// Debug traces every recorded event in the log.
	Debug bool `env:"ANALYTICS_DEBUG, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageMongo, StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMongo, StorageMemory, c.StorageDriver)
	}
	if c.Analytics.Forward && c.StorageDriver != StorageMongo {
		return fmt.Errorf("ANALYTICS_FORWARD requires STORAGE_DRIVER=%s", StorageMongo)
	}
	if c.Analytics.Forward && !c.Analytics.Enabled {
		return fmt.Errorf("ANALYTICS_FORWARD requires ANALYTICS_ENABLED")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	return nil
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
