// Package auth implements the request-gating pipeline: bearer-token
// extraction and verification, identity resolution against the user store,
// and the per-resource ownership check.
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/skriptor-labs/postwise/internal/model"
)

// userKey is the single gin-context key under which the gate stores the
// resolved caller. Unexported helpers keep access type-safe.
const userKey = "auth.user"

// SetUser stores the resolved caller identity in the request context.
// Called by the gate; exported for handler tests.
func SetUser(c *gin.Context, u *model.User) {
	c.Set(userKey, u)
}

// UserFrom retrieves the resolved caller identity, if the gate ran.
func UserFrom(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*model.User)
	return u, ok
}

// MustUser retrieves the resolved caller identity. Panics if the gate did
// not run; use only on routes behind the gate.
func MustUser(c *gin.Context) *model.User {
	u, ok := UserFrom(c)
	if !ok {
		panic("auth: no resolved user in context (route not behind the gate?)")
	}
	return u
}
