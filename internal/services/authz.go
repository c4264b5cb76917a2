// internal/services/authz.go
package services

import (
	"github.com/google/uuid"

	"github.com/stamperia/stamperia-backend/internal/apperrors"
	"github.com/stamperia/stamperia-backend/internal/models"
)

// Actor identifies the authenticated caller of a service operation. Handlers
// build it from the JWT claims; tests build it directly.
type Actor struct {
	ID   uuid.UUID
	Role models.UserRole
}

func (a Actor) IsReviewer() bool {
	return a.Role == models.UserRoleDesigner || a.Role == models.UserRoleAdmin
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

// The design access policy lives here so every design-touching operation
// applies the same ownership rules.

// CanViewDesign allows the owner and any reviewer role.
func CanViewDesign(actor Actor, design *models.Design) error {
	if actor.Role == models.UserRoleClient && design.UserID != actor.ID {
		return apperrors.Forbidden("Unauthorized to view this design")
	}
	return nil
}

// CanUpdateDesign allows only the owner. Reviewers mutate designs through
// the review workflow, never through direct updates.
func CanUpdateDesign(actor Actor, design *models.Design) error {
	if design.UserID != actor.ID {
		return apperrors.Forbidden("Unauthorized to update this design")
	}
	return nil
}

// CanDeleteDesign allows the owner and admins.
func CanDeleteDesign(actor Actor, design *models.Design) error {
	if design.UserID != actor.ID && !actor.IsAdmin() {
		return apperrors.Forbidden("Unauthorized to delete this design")
	}
	return nil
}
