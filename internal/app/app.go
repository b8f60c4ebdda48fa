package app

import (
	"fmt"
	"time"

	"admindash_backend/database"
	"admindash_backend/internal/auth"
	"admindash_backend/internal/config"
	"admindash_backend/internal/handlers"
	"admindash_backend/internal/logger"
	"admindash_backend/internal/middleware"
	"admindash_backend/internal/routes"
	"admindash_backend/internal/services"
	"admindash_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the gin engine with all services and routes.
// Tests call this directly against their own database.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	verifier := auth.NewSharedSecretVerifier(cfg.Admin.Password)
	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	serviceContainer := services.NewServiceContainer(db, verifier, tokens)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AdminAuth(tokens))

	return ginRouter
}
