package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mdSafdarKhan/redis/internal/domain"
	"github.com/mdSafdarKhan/redis/internal/service"
	"github.com/mdSafdarKhan/redis/pkg/log"
	"github.com/mdSafdarKhan/redis/pkg/response"
)

// Handler handles HTTP requests for user service.
type Handler struct {
	userService service.UserService
}

// NewHandler creates a new HTTP handler.
func NewHandler(userService service.UserService) *Handler {
	return &Handler{
		userService: userService,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:userId", h.GetUser)
		users.PUT("", h.UpdateUser)
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// GetUser returns a single user by id.
func (h *Handler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.BadRequest(c, "userId must be a positive integer")
		return
	}

	user, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		l.Error().Err(err).Int64(log.FieldUserID, userID).Msg("get user failed")
		response.InternalError(c, "failed to get user")
		return
	}

	response.OK(c, user)
}

// UpdateUser overwrites name and followers of the user in the body.
func (h *Handler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid update request")
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateUser(ctx, req.ToUser())
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		l.Error().Err(err).Int64(log.FieldUserID, req.UserID).Msg("update user failed")
		response.InternalError(c, "failed to update user")
		return
	}

	response.OK(c, user)
}

// ListUsers returns every stored user.
func (h *Handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		l.Error().Err(err).Msg("list users failed")
		response.InternalError(c, "failed to list users")
		return
	}

	response.OK(c, users)
}
