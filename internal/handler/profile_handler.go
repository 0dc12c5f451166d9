package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skriptor-labs/postwise/internal/apperror"
	"github.com/skriptor-labs/postwise/internal/auth"
	"github.com/skriptor-labs/postwise/internal/logger"
	"github.com/skriptor-labs/postwise/internal/server"
	"github.com/skriptor-labs/postwise/internal/store"
)

type updateProfileRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type changePasswordRequest struct {
	ID              int64  `json:"id" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// Profile returns the gate-resolved caller, password hash stripped.
func (h *Handler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": auth.MustUser(c)})
}

// UpdateProfile changes the caller's name and email. The email-conflict
// check runs against the gate-resolved identity, but the write is keyed by
// the body-supplied id and silently no-ops when that id matches no user.
// Tokens issued before an email change keep referencing the old email.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperror.InvalidInput("id is required"))
		return
	}

	caller := auth.MustUser(c)
	ctx := c.Request.Context()

	if req.Email != caller.Email {
		if _, err := h.users.FindByEmail(ctx, req.Email); err == nil {
			server.RespondWithError(c, apperror.EmailTaken())
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			server.RespondWithError(c, apperror.Internal(err))
			return
		}
	}

	target, err := h.users.FindByID(ctx, req.ID)
	switch {
	case err == nil:
		target.Name = req.Name
		target.Email = req.Email
		if err := h.users.Update(ctx, target); err != nil {
			if errors.Is(err, store.ErrConflict) {
				// The pre-check above compared against the caller; a write
				// keyed by another user's id can still collide on email.
				server.RespondWithError(c, apperror.EmailTaken())
				return
			}
			server.RespondWithError(c, apperror.Internal(err))
			return
		}
	case errors.Is(err, store.ErrNotFound):
		// No matching record; the response still succeeds.
	default:
		server.RespondWithError(c, apperror.Internal(err))
		return
	}

	h.log.Info("profile updated", logger.Fields(logger.FieldUserID, req.ID))
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    gin.H{"id": req.ID, "name": req.Name, "email": req.Email},
	})
}

// ChangePassword verifies the current password of the body-identified user
// and stores a fresh hash of the new one. An unknown id and a wrong current
// password produce the same error. Identity comes from the body, not a
// token; the route is on the public allow-list.
func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperror.InvalidInput("id, currentPassword and newPassword are required"))
		return
	}

	ctx := c.Request.Context()
	user, err := h.users.FindByID(ctx, req.ID)
	if err != nil || !h.hasher.Verify(req.CurrentPassword, user.Password) {
		server.RespondWithError(c, apperror.InvalidCurrentPassword())
		return
	}

	digest, err := h.hasher.Hash(req.NewPassword)
	if err != nil {
		server.RespondWithError(c, apperror.InvalidInput(err.Error()))
		return
	}
	user.Password = digest
	if err := h.users.Update(ctx, user); err != nil {
		server.RespondWithError(c, apperror.Internal(err))
		return
	}

	h.log.Info("password changed", logger.Fields(logger.FieldUserID, user.ID))
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
