package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"

	_ "github.com/sm8ta/webike_auth_microservice_nikita/docs"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/directory"
	handlers "github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/handler/http"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/hasher"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/prometheus"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/redis"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/token"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/app"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/config"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/services"
)

// @title Auth Microservice API
// @version 1.0
// @description Login, credential checks and token introspection

// @host localhost:8080
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

	// Observability
	metrics := prometheus.NewPrometheusAdapter(prom.DefaultRegisterer, cfg.App.Name)

	// Directory
	httpDirectory, err := directory.NewHTTPDirectory(directory.Config{
		BaseURL: cfg.Directory.URL,
		Timeout: cfg.Directory.Timeout,
		APIKey:  cfg.Directory.APIKey,
	}, loggerAdapter, metrics)
	if err != nil {
		log.Fatalf("Error configuring user directory: %v", err)
	}

	var userDirectory ports.UserDirectory = httpDirectory
	var closers []func() error
	if cfg.Directory.CacheTTL > 0 {
		redisConn := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := redisConn.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		closers = append(closers, redisConn.Close)

		userDirectory = directory.NewCachedDirectory(httpDirectory, redis.NewRedisAdapter(redisConn), cfg.Directory.CacheTTL, loggerAdapter)
		loggerAdapter.Info("Directory lookup cache enabled", map[string]interface{}{
			"ttl": cfg.Directory.CacheTTL.String(),
		})
	}

	// Auth
	tokenService := token.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, loggerAdapter, token.WithIssuer(cfg.Token.Issuer))
	credentialValidator, err := services.NewCredentialValidator(userDirectory, hasher.NewBcryptHasher(cfg.Hasher.Cost), loggerAdapter)
	if err != nil {
		log.Fatalf("Error initializing credential validator: %v", err)
	}
	authService := services.NewAuthService(credentialValidator, tokenService, loggerAdapter, metrics)
	authHandler := handlers.NewAuthHandler(authService, loggerAdapter, metrics)

	// Init router
	router, err := handlers.NewAuthRouter(&cfg.HTTP, loggerAdapter, tokenService, authHandler)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(loggerAdapter, router.Server(cfg.HTTP.ListenAddr()), closers...)
	if err := application.Run(ctx); err != nil {
		loggerAdapter.Error("Application failed", map[string]interface{}{
			"error": err.Error(),
		})
		stop()
		os.Exit(1)
	}
}
