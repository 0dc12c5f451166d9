package token

import (
	"crypto/rand"
	"errors"
	"io"
	"time"
)

// SecretLength is the byte length of a generated signing secret.
const SecretLength = 32

// Config configures the token service.
type Config struct {
	// Secret is the HMAC signing key. Required.
	Secret []byte

	// TTL is the token lifetime (default: 1h).
	TTL time.Duration

	// Clock returns the current time (default: time.Now). Injected so
	// expiry behavior is testable without waiting.
	Clock func() time.Time
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = time.Hour
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if len(c.Secret) == 0 {
		return errors.New("token: secret is required")
	}
	return nil
}

// NewRandomSecret returns a fresh cryptographically random signing secret.
// A secret generated at process start invalidates every previously issued
// token on restart.
func NewRandomSecret() ([]byte, error) {
	b := make([]byte, SecretLength)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
