package http

import (
	"net/http"

	"taskearn-backend/internal/common/middleware"
	"taskearn-backend/internal/features/user/models"
	"taskearn-backend/internal/features/user/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	me := router.Group("/users")
	me.Use(middleware.RequireAuth())
	{
		me.PUT("/me", h.UpdateProfile)
	}

	admin := router.Group("/users")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", h.ListUsers)
		admin.GET("/stats", h.GetStats)
		admin.GET("/search", h.SearchUsers)
		admin.PUT("/:id/role", h.UpdateRole)
		admin.PUT("/:id/status", h.UpdateStatus)
		admin.DELETE("/:id", h.DeleteUser)
	}
}

// @Summary List all users
// @Description List every registered user without password fields (admin only)
// @Tags users
// @Produce json
// @Security SessionToken
// @Success 200 {array} models.UserResponse "Users"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden - not an admin"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Get user statistics
// @Description Aggregate counts by status and role, new users this month and summed earnings (admin only)
// @Tags users
// @Produce json
// @Security SessionToken
// @Success 200 {object} models.UserStats "Aggregate statistics"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden - not an admin"
// @Router /users/stats [get]
func (h *UserHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Search users
// @Description Case-insensitive substring match on name or email with optional exact role/status filters, newest first (admin only)
// @Tags users
// @Produce json
// @Security SessionToken
// @Param term query string false "Search term"
// @Param role query string false "Exact role filter"
// @Param status query string false "Exact status filter"
// @Success 200 {array} models.UserResponse "Matching users"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden - not an admin"
// @Router /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var filter models.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := h.service.Search(c.Request.Context(), c.Query("term"), filter)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Update user role
// @Description Set a user's role (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path string true "User ID"
// @Param role body models.RoleUpdate true "New role"
// @Success 200 {object} models.UserResponse "Updated user"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var input models.RoleUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.UpdateRole(c.Request.Context(), c.Param("id"), input.Role)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Update user status
// @Description Set a user's status (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path string true "User ID"
// @Param status body models.StatusUpdate true "New status"
// @Success 200 {object} models.UserResponse "Updated user"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/status [put]
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var input models.StatusUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Delete user
// @Description Remove a user record (admin only)
// @Tags users
// @Produce json
// @Security SessionToken
// @Param id path string true "User ID"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == service.ErrUserNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// @Summary Update own profile
// @Description Update the authenticated user's name and email
// @Tags users
// @Accept json
// @Produce json
// @Security SessionToken
// @Param profile body models.ProfileUpdate true "Profile fields"
// @Success 200 {object} models.UserResponse "Updated user"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Email already in use"
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: session token required"})
		return
	}

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case service.ErrEmailTaken:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
