package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

type AuthService struct {
	validator    ports.CredentialValidator
	tokenService ports.TokenService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

func NewAuthService(
	validator ports.CredentialValidator,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthService {
	return &AuthService{
		validator:    validator,
		tokenService: tokenService,
		logger:       logger,
		metrics:      metrics,
	}
}

// Login verifies the credentials and issues a token for the verified identity.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.TokenPayload, error) {
	const op = "AuthService.Login"

	identity, err := s.validator.Verify(ctx, email, password)
	if err != nil {
		s.observe(ctx, "login", email, err)
		return "", nil, err
	}

	// The caller may have gone away while the directory answered.
	if err := ctx.Err(); err != nil {
		s.observe(ctx, "login", email, err)
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	token, payload, err := s.tokenService.CreateToken(identity.Subject, identity.Roles)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create token", map[string]interface{}{
			"error": err.Error(),
			"email": domain.MaskEmail(email),
		})
		s.observe(ctx, "login", email, err)
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	s.observe(ctx, "login", email, nil)
	return token, payload, nil
}

// CheckCredentials is true only when the credentials fully verify.
func (s *AuthService) CheckCredentials(ctx context.Context, email, password string) bool {
	_, err := s.validator.Verify(ctx, email, password)
	s.observe(ctx, "validate", email, err)
	return err == nil
}

func (s *AuthService) observe(ctx context.Context, op, email string, err error) {
	outcome := "success"
	fields := map[string]interface{}{
		"op":    op,
		"email": domain.MaskEmail(email),
	}

	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "Credentials accepted", fields)
	case errors.Is(err, domain.ErrInvalidCredentials):
		outcome = "invalid_credentials"
		s.logger.InfoContext(ctx, "Credentials rejected", fields)
	case errors.Is(err, domain.ErrDirectoryUnavailable):
		outcome = "directory_unavailable"
		fields["error"] = err.Error()
		s.logger.ErrorContext(ctx, "User directory unavailable", fields)
	default:
		outcome = "error"
		fields["error"] = err.Error()
		s.logger.WarnContext(ctx, "Credential check aborted", fields)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter(ports.MetricAuthAttempts, map[string]string{
			"op":      op,
			"outcome": outcome,
		})
	}
}

var _ ports.AuthService = (*AuthService)(nil)
