package auth

import (
	"github.com/skriptor-labs/postwise/internal/apperror"
	"github.com/skriptor-labs/postwise/internal/model"
)

// Authorize decides whether the caller may mutate a resource owned by
// ownerID. Pure comparison: allowed iff the caller is the owner.
func Authorize(caller *model.User, ownerID int64) *apperror.AppError {
	if caller == nil || caller.ID != ownerID {
		return apperror.Forbidden()
	}
	return nil
}
