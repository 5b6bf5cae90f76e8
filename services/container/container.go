package container

import (
	"context"
	"sync"
	"time"

	"sanskruti-travels-service/config"
	"sanskruti-travels-service/services"
	"sanskruti-travels-service/storage"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// ServiceContainer wires the store and all services together. It is
// constructed once at startup and injected into the controllers; nothing
// else holds mutable entity state.
type ServiceContainer struct {
	store  *storage.MemStorage
	config *config.Config
	redis  *redis.Client

	jwtService     services.InterfaceJWTService
	blacklist      services.InterfaceTokenBlacklist
	authService    services.InterfaceAuthService
	adminService   services.InterfaceAdminService
	packageService services.InterfacePackageService
	bookingService services.InterfaceBookingService
	inquiryService services.InterfaceInquiryService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container. redisClient may be
// nil, in which case the session blacklist falls back to process memory.
func NewServiceContainer(store *storage.MemStorage, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if store == nil {
		panic("entity store is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.Warnf("redis ping failed: %v, falling back to in-memory session blacklist", err)
			redisClient = nil
		}
	}

	c := &ServiceContainer{
		store:  store,
		config: cfg,
		redis:  redisClient,
	}
	c.initializeServices()
	return c
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)

	if c.redis != nil {
		c.blacklist = services.NewRedisBlacklist(c.redis)
	} else {
		c.blacklist = services.NewMemoryBlacklist()
	}

	c.authService = services.NewAuthService(c.store, c.jwtService, c.blacklist)
	c.adminService = services.NewAdminService(c.store, c.config)
	c.packageService = services.NewPackageService(c.store, c.config)
	c.bookingService = services.NewBookingService(c.store, c.config)
	c.inquiryService = services.NewInquiryService(c.store, c.config)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "store":
		return c.store
	case "jwt":
		return c.jwtService
	case "blacklist":
		return c.blacklist
	case "auth":
		return c.authService
	case "admin":
		return c.adminService
	case "package":
		return c.packageService
	case "booking":
		return c.bookingService
	case "inquiry":
		return c.inquiryService
	default:
		return nil
	}
}

// GetStore returns the entity store
func (c *ServiceContainer) GetStore() *storage.MemStorage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
