package http

import (
	"net/http"

	"taskearn-backend/internal/common/middleware"
	"taskearn-backend/internal/features/auth/models"
	"taskearn-backend/internal/features/auth/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	session := router.Group("/auth")
	session.Use(middleware.RequireAuth())
	{
		session.POST("/logout", h.Logout)
		session.GET("/me", h.Me)
	}
}

// @Summary Log in
// @Description Exchange email and password for a session token and the user projection
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse "Session token and user"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Register
// @Description Create an account and log in implicitly
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body models.RegisterRequest true "Registration data"
// @Success 200 {object} models.AuthResponse "Session token and user"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		if err == service.ErrEmailTaken {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Log out
// @Description Invalidate the current session token
// @Tags auth
// @Produce json
// @Security SessionToken
// @Success 200 {object} map[string]bool "Logged out"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.SessionToken(c)
	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"loggedOut": true})
}

// @Summary Current user
// @Description Return the cached session user projection
// @Tags auth
// @Produce json
// @Security SessionToken
// @Success 200 {object} usermodels.UserResponse "Session user"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: session token required"})
		return
	}

	c.JSON(http.StatusOK, user)
}
