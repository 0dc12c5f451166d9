package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skriptor-labs/postwise/internal/apperror"
	"github.com/skriptor-labs/postwise/internal/auth/token"
	"github.com/skriptor-labs/postwise/internal/logger"
	"github.com/skriptor-labs/postwise/internal/model"
	"github.com/skriptor-labs/postwise/internal/store"
)

// PublicRoute is an exact (method, route-pattern) pair exempt from
// authentication. Exact pairing, not prefix matching: a loose pattern could
// accidentally expose a protected route.
type PublicRoute struct {
	Method string
	Path   string
}

// Gate authenticates requests. It extracts the bearer token, verifies it,
// resolves the claimed identity against the user store, and attaches the
// resolved user to the request context.
type Gate struct {
	tokens *token.Service
	users  store.UserStore
	log    *logger.Logger
	public map[PublicRoute]struct{}
}

// NewGate creates a gate over the given token service and user store.
func NewGate(tokens *token.Service, users store.UserStore, log *logger.Logger, public []PublicRoute) *Gate {
	allow := make(map[PublicRoute]struct{}, len(public))
	for _, r := range public {
		allow[r] = struct{}{}
	}
	return &Gate{
		tokens: tokens,
		users:  users,
		log:    log.WithComponent("auth.gate"),
		public: allow,
	}
}

// Middleware returns the engine-wide gin middleware. Every route passes
// through it except the public allow-list. Requests that match no registered
// route have an empty route pattern, never a public one, so they stay gated
// like the rest.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := PublicRoute{Method: c.Request.Method, Path: c.FullPath()}
		if _, ok := g.public[route]; ok {
			c.Next()
			return
		}

		user, appErr := g.Authenticate(c)
		if appErr != nil {
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}
		SetUser(c, user)
		c.Next()
	}
}

// Authenticate runs the gate logic for one request and returns the resolved
// caller. The three token failure kinds produce one indistinguishable 401;
// a verified token whose subject no longer exists (user deleted after
// issuance) is a 404, not a 401, since the token itself was fine.
func (g *Gate) Authenticate(c *gin.Context) (*model.User, *apperror.AppError) {
	raw, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		return nil, apperror.Unauthorized()
	}

	claims, err := g.tokens.Verify(raw)
	if err != nil {
		g.log.Debug("token rejected", logger.Fields("reason", err.Error()))
		return nil, apperror.Unauthorized()
	}

	u, err := g.users.FindByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NotFound("user")
		}
		return nil, apperror.Internal(err)
	}
	return u, nil
}

// bearerToken extracts the token from an "Authorization: Bearer <tok>"
// header value.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
