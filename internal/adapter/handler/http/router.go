package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/config"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

const (
	AuthSwaggerInstance  = "auth"
	UsersSwaggerInstance = "users"
)

type Router struct {
	*gin.Engine
}

// newEngine builds the middleware chain shared by both services.
func newEngine(
	config *config.HTTP,
	logger ports.LoggerPort,
	tokenService ports.TokenService,
	swaggerInstance string,
) *gin.Engine {
	if config.Env == "prod" || config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	for _, origin := range config.AllowedOrigins {
		if origin == "*" {
			corsConfig.AllowAllOrigins = true
			break
		}
		if origin != "" {
			corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, origin)
		}
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestLogger(logger),
		cors.New(corsConfig),
		Authenticate(tokenService, logger),
	)

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(swaggerInstance)))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", health)

	return router
}

func NewAuthRouter(
	config *config.HTTP,
	logger ports.LoggerPort,
	tokenService ports.TokenService,
	authHandler *AuthHandler,
) (*Router, error) {
	router := newEngine(config, logger, tokenService, AuthSwaggerInstance)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/validate", authHandler.Validate)
		auth.GET("/me", RequireAuth(), authHandler.Me)
	}

	return &Router{
		Engine: router,
	}, nil
}

func NewUsersRouter(
	config *config.HTTP,
	logger ports.LoggerPort,
	tokenService ports.TokenService,
	userHandler *UserHandler,
	serviceKey string,
) (*Router, error) {
	router := newEngine(config, logger, tokenService, UsersSwaggerInstance)

	users := router.Group("/users")
	{
		// Routers without auth
		users.POST("", userHandler.Register)
		users.GET("/by-email", RequireServiceKey(serviceKey), userHandler.GetByEmail)

		// Routers with auth
		users.GET("", RequireRole(domain.Admin), userHandler.ListUsers)
		users.GET("/:id", RequireAuth(), userHandler.GetUser)
		users.PUT("/:id", RequireAuth(), userHandler.UpdateUser)
		users.DELETE("/:id", RequireAuth(), userHandler.DeleteUser)
	}

	return &Router{
		Engine: router,
	}, nil
}

// Server wraps the router in an http.Server so callers control shutdown.
func (r *Router) Server(listenAddr string) *http.Server {
	return &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
