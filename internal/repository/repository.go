// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/google/uuid"

	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

// ErrNotFound is returned by every store when the targeted record does not
// exist. Services translate it into their own not-found errors.
var ErrNotFound = errors.New("record not found")

type DesignStore interface {
	Create(design *models.Design) error
	FindByID(id uuid.UUID) (*models.Design, error)
	// FindByIDWithRelations joins the owning user and the product.
	FindByIDWithRelations(id uuid.UUID) (*models.Design, error)
	FindAllWithRelations(filter models.DesignFilter, params utils.PaginationParams) ([]models.Design, int64, error)
	// Update applies a partial update and returns the refreshed row.
	Update(id uuid.UUID, updates map[string]interface{}) (*models.Design, error)
	// Transition flips the status only if the design is still in the from
	// state. It reports false when the guard matched no row, which is how a
	// losing concurrent reviewer finds out.
	Transition(id uuid.UUID, from, to models.DesignStatus) (bool, error)
	Delete(id uuid.UUID) error
}

type ProductStore interface {
	Create(product *models.Product) error
	FindByID(id uuid.UUID) (*models.Product, error)
	FindAll(filter models.ProductFilter, params utils.PaginationParams) ([]models.Product, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*models.Product, error)
	Delete(id uuid.UUID) error
}

type ReviewStore interface {
	Create(review *models.Review) error
	// FindByDesignID returns the design's reviews newest first.
	FindByDesignID(designID uuid.UUID) ([]models.Review, error)
	FindByDesignIDWithRelations(designID uuid.UUID) ([]models.Review, error)
	FindAll(params utils.PaginationParams) ([]models.Review, int64, error)
}

type UserStore interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}

// Stores bundles every collaborator the services need. A single value is
// built at startup; UnitOfWork.Do hands out a transaction-bound copy.
type Stores struct {
	Designs  DesignStore
	Products ProductStore
	Reviews  ReviewStore
	Users    UserStore
}

// UnitOfWork runs fn against stores bound to one database transaction. If fn
// returns an error nothing fn wrote is visible afterwards.
type UnitOfWork interface {
	Do(fn func(s Stores) error) error
}
