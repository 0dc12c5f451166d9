package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skriptor-labs/postwise/internal/apperror"
	"github.com/skriptor-labs/postwise/internal/logger"
	"github.com/skriptor-labs/postwise/internal/model"
	"github.com/skriptor-labs/postwise/internal/server"
	"github.com/skriptor-labs/postwise/internal/store"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user and logs them in. The email must not already
// be in use; the check happens here and is backed by the store's uniqueness
// constraint.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperror.InvalidInput("name, email and password are required"))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.users.FindByEmail(ctx, req.Email); err == nil {
		server.RespondWithError(c, apperror.EmailTaken())
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		server.RespondWithError(c, apperror.Internal(err))
		return
	}

	digest, err := h.hasher.Hash(req.Password)
	if err != nil {
		server.RespondWithError(c, apperror.InvalidInput(err.Error()))
		return
	}

	user := &model.User{
		ID:       h.ids.Next(),
		Name:     req.Name,
		Email:    req.Email,
		Password: digest,
	}
	if err := h.users.Insert(ctx, user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Lost the find-then-insert race against a concurrent register.
			server.RespondWithError(c, apperror.EmailTaken())
			return
		}
		server.RespondWithError(c, apperror.Internal(err))
		return
	}

	tok, err := h.tokens.Issue(user.Email, user.Name)
	if err != nil {
		server.RespondWithError(c, apperror.Internal(err))
		return
	}

	h.log.Info("user registered", logger.Fields(
		logger.FieldUserID, user.ID,
		logger.FieldEmail, user.Email,
	))
	c.JSON(http.StatusOK, gin.H{"token": tok, "user": user})
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password produce the exact same response so the caller cannot probe
// which emails are registered.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperror.InvalidInput("email and password are required"))
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil || !h.hasher.Verify(req.Password, user.Password) {
		server.RespondWithError(c, apperror.InvalidCredentials())
		return
	}

	tok, err := h.tokens.Issue(user.Email, user.Name)
	if err != nil {
		server.RespondWithError(c, apperror.Internal(err))
		return
	}

	h.log.Info("user logged in", logger.Fields(logger.FieldUserID, user.ID))
	c.JSON(http.StatusOK, gin.H{"token": tok, "user": user})
}
