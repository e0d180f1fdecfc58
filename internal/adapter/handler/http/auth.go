package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

const tokenTypeBearer = "Bearer"

type AuthHandler struct {
	authService ports.AuthService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType string    `json:"token_type" example:"Bearer"`
	ExpiresAt time.Time `json:"expires_at" example:"2026-01-02T15:04:05Z"`
}

type ValidateResponse struct {
	Valid bool `json:"valid" example:"true"`
}

type IdentityResponse struct {
	Subject string            `json:"subject" example:"user@example.com"`
	Roles   []domain.UserRole `json:"roles" example:"user"`
}

func NewAuthHandler(
	authService ports.AuthService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary User login
// @Description Exchanges email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} successResponse{data=LoginResponse} "Token issued"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Invalid username or password"
// @Failure 503 {object} errorResponse "User directory unavailable"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WarnContext(c.Request.Context(), "Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid request")
		return
	}

	token, payload, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			newErrorResponse(c, http.StatusUnauthorized, "Invalid username or password")
		case errors.Is(err, domain.ErrDirectoryUnavailable):
			newErrorResponse(c, http.StatusServiceUnavailable, "Authentication is temporarily unavailable")
		default:
			h.logger.ErrorContext(c.Request.Context(), "Login failed", map[string]interface{}{
				"email": domain.MaskEmail(req.Email),
				"error": err.Error(),
			})
			newErrorResponse(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	newSuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		Token:     token,
		TokenType: tokenTypeBearer,
		ExpiresAt: payload.ExpiresAt,
	})
}

// @Summary Check credentials
// @Description Reports whether email and password match without issuing a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} ValidateResponse
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /auth/validate [post]
func (h *AuthHandler) Validate(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid request")
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{
		Valid: h.authService.CheckCredentials(c.Request.Context(), req.Email, req.Password),
	})
}

// @Summary Current identity
// @Description Returns the identity carried by the bearer token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} successResponse{data=IdentityResponse}
// @Failure 401 {object} errorResponse "Not authorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := getIdentity(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	newSuccessResponse(c, http.StatusOK, "", IdentityResponse{
		Subject: id.Subject,
		Roles:   id.Roles,
	})
}
