package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	businessapp "github.com/ferrisys/backend/internal/application/business"
	"github.com/ferrisys/backend/internal/application/entitlement"
	identityapp "github.com/ferrisys/backend/internal/application/identity"
	"github.com/ferrisys/backend/internal/infrastructure/auth"
	"github.com/ferrisys/backend/internal/infrastructure/config"
	"github.com/ferrisys/backend/internal/infrastructure/logger"
	"github.com/ferrisys/backend/internal/infrastructure/persistence"
	"github.com/ferrisys/backend/internal/interfaces/http/handler"
	"github.com/ferrisys/backend/internal/interfaces/http/middleware"
	"github.com/ferrisys/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Ferrisys Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := persistence.CloseDatabase(db); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db)
	roleRepo := persistence.NewGormRoleRepository(db)
	moduleRepo := persistence.NewGormModuleRepository(db, entitlement.ModuleName)
	grantRepo := persistence.NewGormRoleModuleRepository(db)
	licenseRepo := persistence.NewGormLicenseRepository(db)
	clientRepo := persistence.NewGormClientRepository(db)
	providerRepo := persistence.NewGormProviderRepository(db)
	categoryRepo := persistence.NewGormCategoryRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	purchaseRepo := persistence.NewGormPurchaseRepository(db)
	quoteRepo := persistence.NewGormQuoteRepository(db)

	// Seed modules, the administrator role and the first admin account
	if cfg.Bootstrap.Enabled {
		bootstrapper := persistence.NewBootstrapper(userRepo, roleRepo, moduleRepo, grantRepo, log)
		if err := bootstrapper.Run(context.Background(), cfg.Bootstrap); err != nil {
			log.Fatal("Failed to seed initial data", zap.Error(err))
		}
	}

	// Token blacklist: Redis when configured, in-process otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Using in-memory token blacklist; revocations are lost on restart")
	}

	// Entitlement and identity services
	tokenService := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer)
	evaluator := entitlement.NewEvaluator(moduleRepo, licenseRepo, cfg.Modules, log)
	composer := entitlement.NewComposer(userRepo, roleRepo, grantRepo, evaluator, log)
	authService := identityapp.NewAuthService(userRepo, tokenService, composer, blacklist, log)
	adminService := identityapp.NewAdminService(userRepo, roleRepo, moduleRepo, grantRepo, licenseRepo, log)

	// Business services
	partnerService := businessapp.NewPartnerService(clientRepo, providerRepo, log)
	inventoryService := businessapp.NewInventoryService(categoryRepo, productRepo, log)
	tradeService := businessapp.NewTradeService(purchaseRepo, quoteRepo, providerRepo, clientRepo, productRepo, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.AuthenticationConfig{
		Tokens:    tokenService,
		Users:     userRepo,
		Composer:  composer,
		Blacklist: blacklist,
		Logger:    log,
	}.Middleware())

	engine.GET("/health", healthHandler(db, log))

	router.Build(engine, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Admin:     handler.NewAdminHandler(adminService),
		Partner:   handler.NewPartnerHandler(partnerService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Trade:     handler.NewTradeHandler(tradeService),
	}, evaluator)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			log.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
