package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/directory"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type UserRequest struct {
	Name     string `json:"name" binding:"required" example:"Ivan Ivanov"`
	Email    string `json:"email" binding:"required" example:"ivan@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type UpdateUser struct {
	Name     *string           `json:"name,omitempty" example:"New Name"`
	Email    *string           `json:"email,omitempty" example:"new@example.com"`
	Password *string           `json:"password,omitempty" example:"newpassword123"`
	Roles    []domain.UserRole `json:"roles,omitempty" example:"user"`
}

type UserDTO struct {
	UserID    string            `json:"user_id" example:"12bd787e-05d0-44eb-97e2-8f10e3a564e2"`
	Name      string            `json:"name" example:"Ivan Ivanov"`
	Email     string            `json:"email" example:"ivan@example.com"`
	Roles     []domain.UserRole `json:"roles" example:"user"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func toUserDTO(user *domain.User) UserDTO {
	return UserDTO{
		UserID:    user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Roles:     user.Roles,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func NewUserHandler(
	userService ports.UserService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Register user
// @Description Creates a user with the default role
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User data"
// @Success 201 {object} successResponse{data=UserDTO} "User created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 409 {object} errorResponse "Email already registered"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed JSON parse in registration", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Roles: []domain.UserRole{domain.AppUser},
	}

	createdUser, err := h.userService.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		status, message := userErrorStatus(err)
		newErrorResponse(c, status, message)
		return
	}

	newSuccessResponse(c, http.StatusCreated, "User created successfully", toUserDTO(createdUser))
}

// @Summary Look up credentials by email
// @Description Internal endpoint used by the auth service
// @Tags internal
// @Produce json
// @Param email query string true "Email"
// @Param X-Service-Key header string false "Service key"
// @Success 200 {object} domain.UserRecord
// @Failure 400 {object} errorResponse "Email is required"
// @Failure 401 {object} errorResponse "Invalid service key"
// @Failure 404 {object} errorResponse "User not found"
// @Router /users/by-email [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	email := c.Query("email")
	if email == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.Header(directory.LookupResultHeader, directory.LookupResultNotFound)
		}
		status, message := userErrorStatus(err)
		newErrorResponse(c, status, message)
		return
	}

	c.JSON(http.StatusOK, user.Record())
}

// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} successResponse{data=[]UserDTO}
// @Failure 400 {object} errorResponse "Invalid paging"
// @Failure 401 {object} errorResponse "Not authorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	limit, err := queryInt(c, "limit")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid limit")
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid offset")
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		status, message := userErrorStatus(err)
		newErrorResponse(c, status, message)
		return
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}
	newSuccessResponse(c, http.StatusOK, "", dtos)
}

// @Summary Get user
// @Description Returns a user to its owner or to an admin
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} successResponse{data=UserDTO} "User found"
// @Failure 401 {object} errorResponse "Not authorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := h.authorizedUser(c)
	if !ok {
		return
	}

	newSuccessResponse(c, http.StatusOK, "User found", toUserDTO(user))
}

// @Summary Update user
// @Description Owners may change name, email and password; only admins may change roles
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUser true "Fields to update"
// @Success 200 {object} successResponse{data=UserDTO} "User updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Not authorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 409 {object} errorResponse "Email already registered"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req UpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed JSON parse in update user", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user, ok := h.authorizedUser(c)
	if !ok {
		return
	}

	id, _ := getIdentity(c)
	if req.Roles != nil && !id.HasRole(domain.Admin) {
		h.logger.Warn("Role change denied", map[string]interface{}{
			"requester": domain.MaskEmail(id.Subject),
			"user_id":   user.ID.String(),
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return
	}

	updatedUser, err := h.userService.UpdateUser(c.Request.Context(), user.ID.String(), ports.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		status, message := userErrorStatus(err)
		newErrorResponse(c, status, message)
		return
	}

	newSuccessResponse(c, http.StatusOK, "User updated successfully", toUserDTO(updatedUser))
}

// @Summary Delete user
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} successResponse "User deleted"
// @Failure 401 {object} errorResponse "Not authorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := h.authorizedUser(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), user.ID.String()); err != nil {
		status, message := userErrorStatus(err)
		newErrorResponse(c, status, message)
		return
	}

	newSuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

// authorizedUser loads the :id user and checks the caller owns it or is an admin.
// Non-admins get 403 for unknown ids so existence is not revealed.
func (h *UserHandler) authorizedUser(c *gin.Context) (*domain.User, bool) {
	userID := c.Param("id")

	id, ok := getIdentity(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "Authorization required")
		return nil, false
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if !id.HasRole(domain.Admin) && (errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrValidation)) {
			newErrorResponse(c, http.StatusForbidden, "Access denied")
			return nil, false
		}
		status, message := userErrorStatus(err)
		newErrorResponse(c, status, message)
		return nil, false
	}

	if !canAccess(id, user.Email) {
		h.logger.Warn("Access denied to user", map[string]interface{}{
			"requester":    domain.MaskEmail(id.Subject),
			"requested_id": userID,
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return nil, false
	}
	return user, true
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.New("negative value")
	}
	return v, nil
}
