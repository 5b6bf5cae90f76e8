package controllers

import (
	"net/http"

	"sanskruti-travels-service/middleware"
	"sanskruti-travels-service/services"
	"sanskruti-travels-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController handles admin session requests.
type InterfaceAuthController interface {
	Login()
	Logout()
	CheckAuth()
}

// AuthController handles admin login, logout and session checks.
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HandleAuthFunc returns a gin handler dispatching to the auth controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "checkAuth":
			controller.CheckAuth()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid method",
			})
		}
	}
}

// Login verifies admin credentials and starts a session. Every failure
// yields the same generic message so usernames cannot be enumerated.
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(c.Ctx, "Invalid login data", err)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	token, err := authService.Login(req.Username, req.Password)
	if err != nil {
		c.Ctx.JSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid credentials",
		})
		return
	}

	cfg := c.Container.GetConfig()
	maxAge := cfg.SessionTTLHours * 3600
	c.Ctx.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// Logout destroys the current session. Idempotent: succeeds whether or not
// a session exists.
func (c *AuthController) Logout() {
	token := middleware.ExtractSessionToken(c.Ctx)

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	authService.Logout(token)

	c.Ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// CheckAuth reports whether the caller holds a live admin session
func (c *AuthController) CheckAuth() {
	token := middleware.ExtractSessionToken(c.Ctx)

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if _, ok := authService.Check(token); ok {
		c.Ctx.JSON(http.StatusOK, gin.H{
			"authenticated": true,
		})
		return
	}

	c.Ctx.JSON(http.StatusUnauthorized, gin.H{
		"authenticated": false,
	})
}
