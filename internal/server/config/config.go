// Package config handles configuration for the server component: defaults,
// a YAML file overlay, environment variables and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the OurChat server. It is built once at
// startup and treated as read-only afterwards.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Cache    CacheConfig    `koanf:"cache"`
	JWT      JWTConfig      `koanf:"jwt"`
	Auth     AuthConfig     `koanf:"auth"`
	Log      LogConfig      `koanf:"log"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Sentry   SentryConfig   `koanf:"sentry"`
}

type ServerConfig struct {
	ServiceName      string        `koanf:"service_name"`
	Address          string        `koanf:"address"`
	MaxMessageSize   int           `koanf:"max_message_size"`
	KeepaliveTime    time.Duration `koanf:"keepalive_time"`
	KeepaliveTimeout time.Duration `koanf:"keepalive_timeout"`
	// RequireToken enforces an access token on every service except
	// the user service.
	RequireToken bool `koanf:"require_token"`
}

// PoolConfig sizes a resource pool and controls its health checks.
// AcquireTimeout of zero waits until a resource is free or the pool closes.
type PoolConfig struct {
	PoolSize       int           `koanf:"pool_size"`
	AcquireTimeout time.Duration `koanf:"acquire_timeout"`
	SweepInterval  time.Duration `koanf:"sweep_interval"`
	ProbeTimeout   time.Duration `koanf:"probe_timeout"`
}

type DatabaseConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	Username       string        `koanf:"username"`
	Password       string        `koanf:"password"`
	Database       string        `koanf:"database"`
	SSLMode        string        `koanf:"sslmode"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	ConnectRetries int           `koanf:"connect_retries"`
	AutoMigrate    bool          `koanf:"auto_migrate"`
	PoolConfig     `koanf:",squash"`
}

type CacheConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	Password       string        `koanf:"password"`
	DB             int           `koanf:"db"`
	CommandTimeout time.Duration `koanf:"command_timeout"`
	PoolConfig     `koanf:",squash"`
}

type JWTConfig struct {
	Secret string        `koanf:"secret"`
	Expire time.Duration `koanf:"expire"`
}

type AuthConfig struct {
	PasswordScheme     string `koanf:"password_scheme"`
	AcceptLegacyHashes bool   `koanf:"accept_legacy_hashes"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// MetricsConfig configures the observability HTTP endpoint. An empty
// Address disables it.
type MetricsConfig struct {
	Address string `koanf:"address"`
}

type SentryConfig struct {
	DSN         string `koanf:"dsn"`
	Environment string `koanf:"environment"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the JWT secret and database credentials must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Server = ServerConfig{
		ServiceName:      "ourchat_server",
		Address:          "0.0.0.0:50051",
		MaxMessageSize:   10 * 1024 * 1024,
		KeepaliveTime:    30 * time.Second,
		KeepaliveTimeout: 10 * time.Second,
		RequireToken:     true,
	}
	c.Database = DatabaseConfig{
		Host:           "localhost",
		Port:           5432,
		Username:       "ourchat",
		Password:       "ourchat",
		Database:       "ourchat",
		SSLMode:        "disable",
		ConnectTimeout: 10 * time.Second,
		ConnectRetries: 3,
		AutoMigrate:    true,
		PoolConfig:     defaultPool(),
	}
	c.Cache = CacheConfig{
		Host:           "localhost",
		Port:           6379,
		CommandTimeout: 5 * time.Second,
		PoolConfig:     defaultPool(),
	}
	c.JWT = JWTConfig{Secret: "change-me", Expire: 24 * time.Hour}
	c.Auth = AuthConfig{PasswordScheme: "argon2id", AcceptLegacyHashes: true}
	c.Log = LogConfig{Level: "info", Format: "json"}
	c.Metrics = MetricsConfig{Address: ":9100"}
	c.Sentry = SentryConfig{Environment: "development"}
}

func defaultPool() PoolConfig {
	return PoolConfig{
		PoolSize:      10,
		SweepInterval: 30 * time.Second,
		ProbeTimeout:  2 * time.Second,
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address is required"))
	}
	if c.Database.PoolSize <= 0 {
		errs = append(errs, errors.New("database.pool_size must be positive"))
	}
	if c.Cache.PoolSize <= 0 {
		errs = append(errs, errors.New("cache.pool_size must be positive"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.JWT.Expire < time.Second {
		errs = append(errs, errors.New("jwt.expire must be at least one second"))
	}
	return errors.Join(errs...)
}
