package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skriptor-labs/postwise/internal/auth"
)

// PublicRoutes enumerates the exact (method, path) pairs the gate lets
// through without a token. Everything else requires a bearer token.
func PublicRoutes() []auth.PublicRoute {
	return []auth.PublicRoute{
		{Method: http.MethodPost, Path: "/register"},
		{Method: http.MethodPost, Path: "/login"},
		{Method: http.MethodGet, Path: "/posts"},
		{Method: http.MethodGet, Path: "/posts/:id"},
		{Method: http.MethodPut, Path: "/profile/change-password"},
		{Method: http.MethodGet, Path: "/health"},
	}
}

// RegisterRoutes attaches every endpoint to the engine. The authentication
// gate is expected to be installed as engine-wide middleware already.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	r.GET("/profile", h.Profile)
	r.PUT("/profile/update", h.UpdateProfile)
	r.PUT("/profile/change-password", h.ChangePassword)

	r.GET("/posts", h.ListPosts)
	r.GET("/posts/user", h.MyPosts)
	r.GET("/posts/:id", h.GetPost)
	r.POST("/posts", h.CreatePost)
	r.PUT("/posts/:id", h.UpdatePost)
	r.DELETE("/posts/:id", h.DeletePost)
}
