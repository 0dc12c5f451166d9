package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skriptor-labs/postwise/internal/apperror"
	"github.com/skriptor-labs/postwise/internal/auth"
	"github.com/skriptor-labs/postwise/internal/logger"
	"github.com/skriptor-labs/postwise/internal/model"
	"github.com/skriptor-labs/postwise/internal/server"
	"github.com/skriptor-labs/postwise/internal/store"
)

// createPostRequest requires every content field to be non-empty.
type createPostRequest struct {
	Title     string `json:"title" validate:"required"`
	Subtitle  string `json:"subtitle" validate:"required"`
	Content   string `json:"content" validate:"required"`
	ShortText string `json:"shortText" validate:"required"`
	Image     string `json:"image" validate:"required"`
	Category  string `json:"category" validate:"required"`
}

// ListPosts returns every post. Public.
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.posts.All(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, apperror.Internal(err))
		return
	}
	c.JSON(http.StatusOK, posts)
}

// MyPosts returns the posts owned by the gate-resolved caller.
func (h *Handler) MyPosts(c *gin.Context) {
	caller := auth.MustUser(c)
	posts, err := h.posts.FindByAuthor(c.Request.Context(), caller.ID)
	if err != nil {
		server.RespondWithError(c, apperror.Internal(err))
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post by id. Public.
func (h *Handler) GetPost(c *gin.Context) {
	post, appErr := h.findPost(c)
	if appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost persists a new post owned by the caller. All six content
// fields must be non-empty.
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperror.MissingFields())
		return
	}
	if err := validate.Struct(&req); err != nil {
		server.RespondWithError(c, apperror.MissingFields())
		return
	}

	caller := auth.MustUser(c)
	post := &model.Post{
		ID:        h.ids.Next(),
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Content:   req.Content,
		ShortText: req.ShortText,
		Image:     req.Image,
		Category:  req.Category,
		AuthorID:  caller.ID,
	}
	if err := h.posts.Insert(c.Request.Context(), post); err != nil {
		server.RespondWithError(c, apperror.Internal(err))
		return
	}

	h.log.Info("post created", logger.Fields(
		"post_id", post.ID,
		logger.FieldUserID, caller.ID,
	))
	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully", "post": post})
}

// UpdatePost shallow-merges the submitted fields into the post. Only the
// owner may update; the author never changes.
func (h *Handler) UpdatePost(c *gin.Context) {
	post, appErr := h.findPost(c)
	if appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}
	if appErr := auth.Authorize(auth.MustUser(c), post.AuthorID); appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}

	var patch model.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		server.RespondWithError(c, apperror.InvalidInput("body must be a JSON object"))
		return
	}
	patch.Apply(post)

	if err := h.posts.Update(c.Request.Context(), post); err != nil {
		server.RespondWithError(c, apperror.Internal(err))
		return
	}

	h.log.Info("post updated", logger.Fields("post_id", post.ID))
	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully", "post": post})
}

// DeletePost removes the post. Only the owner may delete.
func (h *Handler) DeletePost(c *gin.Context) {
	post, appErr := h.findPost(c)
	if appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}
	if appErr := auth.Authorize(auth.MustUser(c), post.AuthorID); appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}

	if err := h.posts.Delete(c.Request.Context(), post.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deleted concurrently between find and delete.
			server.RespondWithError(c, apperror.NotFound("post"))
			return
		}
		server.RespondWithError(c, apperror.Internal(err))
		return
	}

	h.log.Info("post deleted", logger.Fields("post_id", post.ID))
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// findPost resolves the :id route parameter to a post. A non-numeric id can
// match no record, so it reports not-found rather than a parse error.
func (h *Handler) findPost(c *gin.Context) (*model.Post, *apperror.AppError) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, apperror.NotFound("post")
	}
	post, err := h.posts.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NotFound("post")
		}
		return nil, apperror.Internal(err)
	}
	return post, nil
}
