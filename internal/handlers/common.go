// internal/handlers/common.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/services"
)

// actorFromContext rebuilds the authenticated caller from the JWT claims the
// auth middleware stored on the request.
func actorFromContext(c *gin.Context) (services.Actor, bool) {
	rawID, exists := c.Get("user_id")
	if !exists {
		return services.Actor{}, false
	}

	idStr, ok := rawID.(string)
	if !ok {
		return services.Actor{}, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return services.Actor{}, false
	}

	role := models.UserRoleClient
	if rawRole, exists := c.Get("user_role"); exists {
		if roleStr, ok := rawRole.(string); ok {
			role = models.UserRole(roleStr)
		}
	}

	return services.Actor{ID: id, Role: role}, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
