// Package config loads server configuration from BATTLEMAP_ prefixed
// environment variables, optionally seeded from a .env file.
package config

import (
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "BATTLEMAP_"

// DefaultEnvFile is loaded when present and no other file was requested.
const DefaultEnvFile = ".env"

// Storage selects the document store backend.
type Storage string

const (
	StorageMemory Storage = "memory"
	StorageRedis  Storage = "redis"
	StorageSQLite Storage = "sqlite"
)

// Config is the server configuration.
type Config struct {
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"50051"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"battlemap-api"`

	Storage       Storage       `env:"STORAGE" envDefault:"memory"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SQLitePath    string        `env:"SQLITE_PATH" envDefault:"battlemap.db"`
	SnapshotTTL   time.Duration `env:"SNAPSHOT_TTL" envDefault:"168h"`

	MovementPolicy           string `env:"MOVEMENT_POLICY" envDefault:"advisory"`
	ClearStatusesOnCombatEnd bool   `env:"CLEAR_STATUSES_ON_COMBAT_END" envDefault:"false"`

	DND5EBaseURL  string        `env:"DND5E_BASE_URL"`
	DND5ECacheTTL time.Duration `env:"DND5E_CACHE_TTL" envDefault:"24h"`

	NarrationBaseURL string `env:"NARRATION_BASE_URL"`
	NarrationAPIKey  string `env:"NARRATION_API_KEY"`
	NarrationModel   string `env:"NARRATION_MODEL"`

	// OTelEndpoint enables tracing when set, e.g. http://localhost:4318
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Load reads envFile (or DefaultEnvFile when it exists) into the process
// environment and parses the configuration from it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to load env file %s", envFile)
		}
	} else if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring unreadable env file", "file", DefaultEnvFile, "error", err)
	}

	return Parse(env.Options{})
}

// Parse builds a Config from the environment described by opts. The prefix is
// always EnvPrefix.
func Parse(opts env.Options) (*Config, error) {
	opts.Prefix = EnvPrefix

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the parsed values.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("Storage", string(c.Storage),
		[]string{string(StorageMemory), string(StorageRedis), string(StorageSQLite)}, vb)
	if c.Storage == StorageRedis {
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}
	if c.Storage == StorageSQLite {
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}
	if c.SnapshotTTL <= 0 {
		vb.InvalidField("SnapshotTTL", "must be positive")
	}
	if _, err := combat.ParseMovementPolicy(c.MovementPolicy); err != nil {
		vb.InvalidField("MovementPolicy", errors.GetMessage(err))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}

	return vb.Build()
}

// Movement returns the parsed movement policy.
func (c *Config) Movement() combat.MovementPolicy {
	policy, _ := combat.ParseMovementPolicy(c.MovementPolicy)
	return policy
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// NarrationEnabled reports whether a narration backend is configured.
func (c *Config) NarrationEnabled() bool {
	return c.NarrationAPIKey != "" || c.NarrationBaseURL != ""
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}
