package routes

import (
	"sanskruti-travels-service/config"
	"sanskruti-travels-service/controllers"
	"sanskruti-travels-service/middleware"
	"sanskruti-travels-service/services"
	"sanskruti-travels-service/services/container"
	"sanskruti-travels-service/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Public form endpoints are rate limited per client IP to keep spam in
// check without touching the read-only catalog routes.
const (
	formSubmitRate  = 0.5
	formSubmitBurst = 5
)

// SetupRouter initializes and returns the configured router. redisClient
// may be nil; sessions then use the in-memory blacklist.
func SetupRouter(store *storage.MemStorage, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS middleware. The admin panel runs on a separate origin and
	// authenticates with a cookie, so credentials must be allowed and the
	// origin cannot be a wildcard.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	r.Use(middleware.RequestID())

	// Create the service container
	serviceContainer := container.NewServiceContainer(store, cfg, redisClient)
	// Initialize middleware
	middleware.InitAuthMiddleware(serviceContainer.GetService("auth").(services.InterfaceAuthService))

	// Register routes
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API route root path
	api := r.Group("/api")
	// Register public routes
	registerPublicRoutes(api, container)
	// Register routes requiring authentication
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers the public routes
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Health check
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Session routes
	api.POST("/admin/login", controllers.HandleAuthFunc(container, "login"))
	api.POST("/admin/logout", controllers.HandleAuthFunc(container, "logout"))
	api.GET("/admin/check-auth", controllers.HandleAuthFunc(container, "checkAuth"))

	// Package catalog routes. The static paths must be registered before
	// the :id route so "featured" is not parsed as an id.
	api.GET("/packages", controllers.HandlePackageFunc(container, "getPackages"))
	api.GET("/packages/featured", controllers.HandlePackageFunc(container, "getFeaturedPackages"))
	api.GET("/packages/national", controllers.HandlePackageFunc(container, "getNationalPackages"))
	api.GET("/packages/international", controllers.HandlePackageFunc(container, "getInternationalPackages"))
	api.GET("/packages/:id", controllers.HandlePackageFunc(container, "getPackage"))

	// Lead-capture routes, rate limited per client IP
	forms := api.Group("/")
	forms.Use(middleware.IPRateLimiter(formSubmitRate, formSubmitBurst))
	forms.POST("/bookings", controllers.HandleBookingFunc(container, "createBooking"))
	forms.POST("/custom-tour", controllers.HandleInquiryFunc(container, "createCustomTourRequest"))
	forms.POST("/contact", controllers.HandleInquiryFunc(container, "createContactSubmission"))
}

// registerAuthenticatedRoutes registers routes requiring an admin session
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Add the session middleware
	auth := api.Group("/")
	auth.Use(middleware.RequireAuth())

	// Package management routes
	auth.Group("/packages").POST("", controllers.HandlePackageFunc(container, "createPackage"))
	auth.Group("/packages").PATCH("/:id", controllers.HandlePackageFunc(container, "updatePackage"))
	auth.Group("/packages").DELETE("/:id", controllers.HandlePackageFunc(container, "deletePackage"))

	// Booking inbox routes
	auth.Group("/bookings").GET("", controllers.HandleBookingFunc(container, "getBookings"))
}
