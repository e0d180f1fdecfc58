package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

// ServiceKeyHeader carries the shared key the directory expects on lookups.
const ServiceKeyHeader = "X-Service-Key"

const defaultTimeout = 5 * time.Second

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	APIKey     string
	HTTPClient *http.Client
}

// HTTPDirectory queries the users service. It never retries: a 404 is
// authoritative and anything else is reported as a transport failure.
type HTTPDirectory struct {
	transport *httptransport.Runtime
	schemes   []string
	authInfo  runtime.ClientAuthInfoWriter
	timeout   time.Duration
	formats   strfmt.Registry
	logger    ports.LoggerPort
	metrics   ports.MetricsPort
}

func NewHTTPDirectory(cfg Config, logger ports.LoggerPort, metrics ports.MetricsPort) (*HTTPDirectory, error) {
	const op = "directory.NewHTTPDirectory"

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%s: invalid base url %q", op, cfg.BaseURL)
	}

	basePath := u.Path
	if basePath == "" {
		basePath = "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	schemes := []string{u.Scheme}
	d := &HTTPDirectory{
		transport: httptransport.NewWithClient(u.Host, basePath, schemes, cfg.HTTPClient),
		schemes:   schemes,
		timeout:   timeout,
		formats:   strfmt.Default,
		logger:    logger,
		metrics:   metrics,
	}
	if cfg.APIKey != "" {
		d.authInfo = httptransport.APIKeyAuth(ServiceKeyHeader, "header", cfg.APIKey)
	}

	logger.Info("User directory client configured", map[string]interface{}{
		"addr":    u.Host,
		"timeout": timeout.String(),
	})

	return d, nil
}

func (d *HTTPDirectory) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	const op = "HTTPDirectory.FindByEmail"

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	params := &findByEmailParams{
		Email:   email,
		timeout: d.timeout,
		Context: ctx,
	}

	result, err := d.transport.Submit(&runtime.ClientOperation{
		ID:                 "findUserByEmail",
		Method:             http.MethodGet,
		PathPattern:        findByEmailPath,
		ProducesMediaTypes: []string{"application/json"},
		ConsumesMediaTypes: []string{"application/json"},
		Schemes:            d.schemes,
		Params:             params,
		Reader:             &findByEmailReader{formats: d.formats},
		AuthInfo:           d.authInfo,
		Context:            params.Context,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			d.record("not_found")
			return nil, domain.ErrUserNotFound
		}

		d.record("error")
		d.logger.WarnContext(ctx, "User directory lookup failed", map[string]interface{}{
			"error": err.Error(),
			"op":    op,
		})
		return nil, &domain.TransportError{Op: op, Err: err}
	}

	record, ok := result.(*domain.UserRecord)
	if !ok || record.Email == "" || record.PasswordHash == "" {
		d.record("error")
		return nil, &domain.TransportError{Op: op, Err: errors.New("malformed directory response")}
	}

	d.record("found")
	return record, nil
}

func (d *HTTPDirectory) record(outcome string) {
	if d.metrics == nil {
		return
	}
	d.metrics.IncrementCounter(ports.MetricDirectoryLookups, map[string]string{"outcome": outcome})
}

var _ ports.UserDirectory = (*HTTPDirectory)(nil)
