package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	prom "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"

	_ "github.com/sm8ta/webike_auth_microservice_nikita/docs"
	handlers "github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/handler/http"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/hasher"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/postgres/repository"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/prometheus"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/redis"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/token"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/app"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/config"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/services"
)

// @title User Microservice API
// @version 1.1
// @description User directory: registration, profile management and the credential lookup used by the auth service

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisConn.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Connect DB
	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	// Migrate DB
	if err := goose.Up(db, cfg.DB.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Cache
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(prom.DefaultRegisterer, cfg.App.Name)

	// User
	userRepo := repository.NewUserRepository(db)
	tokenService := token.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, loggerAdapter, token.WithIssuer(cfg.Token.Issuer))
	userService := services.NewUserService(userRepo, hasher.NewBcryptHasher(cfg.Hasher.Cost), loggerAdapter, validate, cacheAdapter)
	userHandler := handlers.NewUserHandler(userService, loggerAdapter, metrics)

	// Init router
	router, err := handlers.NewUsersRouter(&cfg.HTTP, loggerAdapter, tokenService, userHandler, cfg.Directory.APIKey)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(loggerAdapter, router.Server(cfg.HTTP.ListenAddr()), db.Close, redisConn.Close)
	if err := application.Run(ctx); err != nil {
		loggerAdapter.Error("Application failed", map[string]interface{}{
			"error": err.Error(),
		})
		stop()
		os.Exit(1)
	}
}
