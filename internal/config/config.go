package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type (
	Container struct {
		App       App
		Token     Token
		DB        DB
		HTTP      HTTP
		Redis     Redis
		Directory Directory
		Hasher    Hasher
	}

	App struct {
		Name string `env:"APP_NAME" envDefault:"webike-auth"`
		Env  string `env:"APP_ENV" envDefault:"local"`
	}

	Token struct {
		Secret   string        `env:"TOKEN_SECRET,required,notEmpty"`
		Duration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`
		Issuer   string        `env:"TOKEN_ISSUER" envDefault:"webike-auth"`
	}

	DB struct {
		Host          string `env:"DB_HOST" envDefault:"localhost"`
		Port          string `env:"DB_PORT" envDefault:"5432"`
		User          string `env:"DB_USER" envDefault:"postgres"`
		Password      string `env:"DB_PASSWORD"`
		Name          string `env:"DB_NAME" envDefault:"webike_users"`
		SSLMode       string `env:"DB_SSLMODE" envDefault:"disable"`
		MigrationsDir string `env:"DB_MIGRATIONS_DIR" envDefault:"./internal/adapter/postgres/migrations"`
	}

	HTTP struct {
		Env            string   `env:"APP_ENV" envDefault:"local"`
		URL            string   `env:"HTTP_URL" envDefault:"0.0.0.0"`
		Port           string   `env:"HTTP_PORT" envDefault:"8080"`
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	Redis struct {
		Address  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Directory struct {
		URL      string        `env:"DIRECTORY_URL" envDefault:"http://localhost:8081"`
		Timeout  time.Duration `env:"DIRECTORY_TIMEOUT" envDefault:"5s"`
		APIKey   string        `env:"DIRECTORY_API_KEY"`
		CacheTTL time.Duration `env:"DIRECTORY_CACHE_TTL" envDefault:"0s"`
	}

	Hasher struct {
		Cost int `env:"BCRYPT_COST" envDefault:"10"`
	}
)

func New() (*Container, error) {
	const op = "config.New"

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	var cfg Container
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, origin := range cfg.HTTP.AllowedOrigins {
		cfg.HTTP.AllowedOrigins[i] = strings.TrimSpace(origin)
	}
	if cfg.Token.Duration <= 0 {
		return nil, fmt.Errorf("%s: TOKEN_DURATION must be positive", op)
	}
	if cfg.Directory.CacheTTL < 0 {
		return nil, fmt.Errorf("%s: DIRECTORY_CACHE_TTL must not be negative", op)
	}

	return &cfg, nil
}

// ListenAddr is the host:port the HTTP server binds.
func (h HTTP) ListenAddr() string {
	return net.JoinHostPort(h.URL, h.Port)
}

func (d DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// IsProduction reports whether the environment runs in release mode.
func (a App) IsProduction() bool {
	return a.Env == "prod" || a.Env == "production"
}
