// Package config loads service configuration from an optional YAML file,
// an optional .env file, and POSTWISE_-prefixed environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/skriptor-labs/postwise/internal/logger"
	"github.com/skriptor-labs/postwise/internal/server"
)

// Config is the root configuration for the service.
type Config struct {
	Server  server.Config `yaml:"server" mapstructure:"server"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Auth    AuthConfig    `yaml:"auth" mapstructure:"auth"`
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
}

// AuthConfig configures token issuance and password hashing.
type AuthConfig struct {
	// Secret pins the token signing secret. Leave empty in production: the
	// service then generates a fresh random secret at startup, so a restart
	// invalidates all outstanding tokens. Pin it only for deterministic
	// test setups.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// TokenTTL is the bearer token lifetime (default: 1h).
	TokenTTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`

	// BcryptCost is the password hashing cost (default: 10).
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	// Driver is "sqlite" or "memory" (default: "sqlite").
	Driver string `yaml:"driver" mapstructure:"driver"`

	// Path is the sqlite database file (default: "postwise.db").
	Path string `yaml:"path" mapstructure:"path"`
}

// ApplyDefaults fills every section's zero-value fields.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = time.Hour
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "sqlite"
	}
	if c.Store.Path == "" {
		c.Store.Path = "postwise.db"
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Auth.TokenTTL < 0 {
		return fmt.Errorf("auth.token_ttl must be non-negative (got: %s)", c.Auth.TokenTTL)
	}
	switch c.Store.Driver {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("store.driver must be sqlite or memory (got: %s)", c.Store.Driver)
	}
	return nil
}
