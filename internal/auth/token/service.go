// Package token issues and verifies the signed, time-limited bearer tokens
// that carry the caller's identity claim.
//
// Tokens are HS256 JWTs holding {email, name} plus issued-at and expiry
// timestamps. The server keeps no session state: verification is a pure
// signature-and-expiry check against the process signing secret.
package token

import (
	"errors"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. Handlers collapse all of them into one generic
// 401; the distinction exists for logs and tests.
var (
	// ErrMalformed means the string could not be parsed as a token.
	ErrMalformed = errors.New("token: malformed")
	// ErrBadSignature means the signature does not match the signing secret.
	ErrBadSignature = errors.New("token: bad signature")
	// ErrExpired means the token's expiry has passed.
	ErrExpired = errors.New("token: expired")
)

// Claims is the identity data encoded inside a token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	gojwt.RegisteredClaims
}

// Service issues and verifies bearer tokens.
type Service struct {
	cfg Config
}

// NewService creates a token service from config.
func NewService(cfg *Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: *cfg}, nil
}

// Issue creates a signed token for the given identity. Issued-at is the
// current clock time and expiry is exactly TTL later.
func (s *Service) Issue(email, name string) (string, error) {
	now := s.cfg.Clock()
	claims := &Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}
	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. On failure the returned error
// matches exactly one of ErrMalformed, ErrBadSignature, or ErrExpired under
// errors.Is. Verification is pure: no side effects, clock injected.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(s.cfg.Clock),
	)
	if err != nil {
		return nil, classify(err)
	}
	if !tok.Valid {
		return nil, ErrBadSignature
	}
	return claims, nil
}

// keyFunc returns the verification key after checking the signing method.
func (s *Service) keyFunc(tok *gojwt.Token) (interface{}, error) {
	if _, ok := tok.Method.(*gojwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token: unexpected signing method: %s", tok.Method.Alg())
	}
	return s.cfg.Secret, nil
}

// classify maps golang-jwt parse errors onto the three failure kinds.
// Anything that parsed but failed validation counts as a bad signature.
func classify(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, gojwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
}
