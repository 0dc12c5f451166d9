// Package handler implements the HTTP endpoints: registration, login,
// profile management, and post CRUD. Handlers compose the credential
// hasher, token service, gate-resolved identity, and ownership check; every
// failure is resolved locally into one response.
package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/skriptor-labs/postwise/internal/auth/password"
	"github.com/skriptor-labs/postwise/internal/auth/token"
	"github.com/skriptor-labs/postwise/internal/logger"
	"github.com/skriptor-labs/postwise/internal/store"
)

// validate checks the struct-level field rules on request bodies.
var validate = validator.New()

// Handler carries the dependencies shared by all endpoints.
type Handler struct {
	users  store.UserStore
	posts  store.PostStore
	hasher password.Hasher
	tokens *token.Service
	ids    *store.IDGenerator
	log    *logger.Logger
}

// New creates the endpoint handler set.
func New(
	users store.UserStore,
	posts store.PostStore,
	hasher password.Hasher,
	tokens *token.Service,
	ids *store.IDGenerator,
	log *logger.Logger,
) *Handler {
	return &Handler{
		users:  users,
		posts:  posts,
		hasher: hasher,
		tokens: tokens,
		ids:    ids,
		log:    log.WithComponent("handler"),
	}
}
