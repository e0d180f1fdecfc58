package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
)

func getIdentity(c *gin.Context) (*domain.Identity, bool) {
	return domain.IdentityFromContext(c.Request.Context())
}

// canAccess reports whether id may act on the user owning email.
func canAccess(id *domain.Identity, email string) bool {
	return id.HasRole(domain.Admin) || id.Subject == email
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
