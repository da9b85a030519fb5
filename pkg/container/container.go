package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-backend/internal/config"
	infracache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	pkgcache "library-backend/pkg/cache"

	borrowinghandler "library-backend/internal/domains/borrowing/handler"
	borrowingrepo "library-backend/internal/domains/borrowing/repository"
	borrowingservice "library-backend/internal/domains/borrowing/service"
	cataloghandler "library-backend/internal/domains/catalog/handler"
	catalogrepo "library-backend/internal/domains/catalog/repository"
	catalogservice "library-backend/internal/domains/catalog/service"
	"library-backend/internal/domains/payment/gateway/remote"
	paymenthandler "library-backend/internal/domains/payment/handler"
	paymentservice "library-backend/internal/domains/payment/service"
)

// Container holds every dependency of the application; the root of the
// dependency graph. Initialization order: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  pkgcache.Cache // nil when Redis is unreachable

	CatalogRepo   catalogrepo.Repository
	BorrowingRepo borrowingrepo.Repository

	CatalogService   catalogservice.Service
	BorrowingService borrowingservice.Service
	PaymentService   paymentservice.Service

	CatalogHandler   *cataloghandler.Handler
	BorrowingHandler *borrowinghandler.Handler
	PaymentHandler   *paymenthandler.Handler
}

func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// Step 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// Step 2: PostgreSQL
	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("✅ Database connected")

	// Step 3: Redis cache. Catalog reads fall back to the store when the
	// cache is down, so a failure here is not fatal.
	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("⚠️  Redis unavailable, running without cache: %v", err)
	} else {
		c.Cache = redisCache
		log.Println("✅ Redis connected")
	}

	// Step 4: Payment gateway client
	paymentGateway, err := remote.NewClient(&cfg.Gateway)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment gateway client: %w", err)
	}

	// Step 5: Repositories
	c.CatalogRepo = catalogrepo.NewPostgresRepository(db.Pool)
	c.BorrowingRepo = borrowingrepo.NewPostgresRepository(db.Pool)

	// Step 6: Services
	c.CatalogService = catalogservice.NewService(c.CatalogRepo, c.Cache)
	c.BorrowingService = borrowingservice.NewService(c.CatalogRepo, c.BorrowingRepo)
	c.PaymentService = paymentservice.NewService(paymentGateway, c.CatalogRepo, c.BorrowingService)

	// Step 7: Handlers
	c.CatalogHandler = cataloghandler.NewHandler(c.CatalogService)
	c.BorrowingHandler = borrowinghandler.NewHandler(c.BorrowingService)
	c.PaymentHandler = paymenthandler.NewHandler(c.PaymentService)

	log.Println("✅ Container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
