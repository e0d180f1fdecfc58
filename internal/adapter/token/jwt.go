package token

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

const defaultExpiration = 24 * time.Hour

// Signature segments must be canonical base64url, otherwise two different
// strings could carry the same signature bytes.
var signatureEncoding = base64.RawURLEncoding.Strict()

type claims struct {
	jwt.RegisteredClaims
	Roles []domain.UserRole `json:"roles"`
}

type JWTTokenService struct {
	secretKey  []byte
	expiration time.Duration
	issuer     string
	now        func() time.Time
	parser     *jwt.Parser
	logger     ports.LoggerPort
}

type Option func(*JWTTokenService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(j *JWTTokenService) {
		j.now = now
	}
}

// WithIssuer stamps and requires the "iss" claim.
func WithIssuer(issuer string) Option {
	return func(j *JWTTokenService) {
		j.issuer = issuer
	}
}

func NewJWTTokenService(secretKey string, expiration time.Duration, logger ports.LoggerPort, opts ...Option) *JWTTokenService {
	if expiration <= 0 {
		logger.Error("Invalid token duration, using default 24h", map[string]interface{}{
			"duration": expiration.String(),
		})
		expiration = defaultExpiration
	}

	j := &JWTTokenService{
		secretKey:  []byte(secretKey),
		expiration: expiration,
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(j)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(j.issuer))
	}
	j.parser = jwt.NewParser(parserOpts...)

	return j
}

func (j *JWTTokenService) CreateToken(subject string, roles []domain.UserRole) (string, *domain.TokenPayload, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		j.logger.Error("Failed to generate uuid", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateToken",
		})
		return "", nil, err
	}

	issuedAt := jwt.NewNumericDate(j.now())
	expiresAt := jwt.NewNumericDate(issuedAt.Add(j.expiration))

	tokenRoles := make([]domain.UserRole, len(roles))
	copy(tokenRoles, roles)

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.String(),
			Subject:   subject,
			Issuer:    j.issuer,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
		Roles: tokenRoles,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(j.secretKey)
	if err != nil {
		j.logger.Error("Failed to sign token", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateToken",
		})
		return "", nil, err
	}

	return signed, &domain.TokenPayload{
		ID:        id,
		Subject:   subject,
		Roles:     tokenRoles,
		IssuedAt:  issuedAt.Time,
		ExpiresAt: expiresAt.Time,
	}, nil
}

// VerifyToken checks the signature before any claim is decoded, then
// enforces exp > now with no leeway.
func (j *JWTTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 || segments[0] == "" || segments[1] == "" || segments[2] == "" {
		return nil, domain.NewTokenError(domain.TokenMalformed, errors.New("token must have three segments"))
	}

	sig, err := signatureEncoding.DecodeString(segments[2])
	if err != nil {
		return nil, domain.NewTokenError(domain.TokenBadSignature, err)
	}
	if err := jwt.SigningMethodHS256.Verify(segments[0]+"."+segments[1], sig, j.secretKey); err != nil {
		return nil, domain.NewTokenError(domain.TokenBadSignature, err)
	}

	c := &claims{}
	_, err = j.parser.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.NewTokenError(domain.TokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, domain.NewTokenError(domain.TokenBadSignature, err)
		default:
			return nil, domain.NewTokenError(domain.TokenMalformed, err)
		}
	}

	if c.Subject == "" || c.IssuedAt == nil {
		return nil, domain.NewTokenError(domain.TokenMalformed, errors.New("missing subject or iat"))
	}
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, domain.NewTokenError(domain.TokenMalformed, err)
	}

	return &domain.TokenPayload{
		ID:        id,
		Subject:   c.Subject,
		Roles:     c.Roles,
		IssuedAt:  c.IssuedAt.Time,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

var _ ports.TokenService = (*JWTTokenService)(nil)
