// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups are embedded so their variables keep unprefixed names.
type Config struct {
	Database
	JWT
	Server
	Log
	Policy
	Hashing
}

type Database struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"hireengine"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	SearchPath      string        `envconfig:"DB_SCHEMA" default:"public"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

// DSN renders the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode, d.SearchPath,
	)
}

type JWT struct {
	Secret       string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer       string        `envconfig:"JWT_ISSUER" default:"hireengine"`
	ExpiryPeriod time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
}

type Server struct {
	Port           string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout    time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout    time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"30s"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:3001,http://localhost:3002"`
}

type Log struct {
	Format string `envconfig:"LOG_FORMAT" default:"json"`
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
}

type Policy struct {
	FreePlanValidity    time.Duration `envconfig:"FREE_PLAN_VALIDITY" default:"720h"`
	MaintenanceInterval time.Duration `envconfig:"MAINTENANCE_INTERVAL" default:"1h"`
	PlanCacheTTL        time.Duration `envconfig:"PLAN_CACHE_TTL" default:"5m"`
	AuditAllowed        bool          `envconfig:"AUDIT_ALLOWED_DECISIONS" default:"false"`
}

// Hashing holds the argon2id cost for new password hashes. Zero keeps the
// built-in default.
type Hashing struct {
	Argon2Time      uint32 `envconfig:"PASSWORD_ARGON2_TIME" default:"1"`
	Argon2MemoryKiB uint32 `envconfig:"PASSWORD_ARGON2_MEMORY_KIB" default:"65536"`
	Argon2Threads   uint8  `envconfig:"PASSWORD_ARGON2_THREADS" default:"4"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}
	return cfg, nil
}
