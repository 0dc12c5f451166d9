package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/skriptor-labs/postwise/internal/apperror"
)

// RespondWithError inspects err: if it is an *apperror.AppError the status
// and structured body are derived from it; anything else becomes a generic
// 500 so internals never leak to the client.
func RespondWithError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	internal := apperror.Internal(err)
	c.JSON(internal.HTTPStatus, internal.ToResponse())
}
