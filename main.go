package main

import (
	"fmt"
	"os"

	"sanskruti-travels-service/config"
	"sanskruti-travels-service/routes"
	"sanskruti-travels-service/services"
	"sanskruti-travels-service/storage"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	// Load the .env file first so the logger picks up LOG_LEVEL
	envErr := godotenv.Load()

	cfg := config.GetConfig()

	if err := config.SetupLogger(cfg.LogLevel); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if envErr != nil {
		config.Warning("could not load .env file: %v", envErr)
		// Keep going, the environment may be set another way
	} else {
		config.Info("loaded .env file")
	}

	// Entity store, seeded with the sample catalog
	store := storage.NewMemStorage()

	// Make sure an admin account exists
	adminService := services.NewAdminService(store, cfg)
	adminService.EnsureDefaultAdmin()

	// Optional Redis backing for the session blacklist
	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient = services.NewRedisClient(cfg)
	}

	// Initialize the router
	r := routes.SetupRouter(store, cfg, redisClient)

	// Start the server
	config.Info("server listening on: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}
