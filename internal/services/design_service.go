// internal/services/design_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stamperia/stamperia-backend/internal/apperrors"
	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/repository"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

type DesignService struct {
	designs  repository.DesignStore
	products repository.ProductStore
	storage  *StorageService
}

type CreateDesignRequest struct {
	ProductID  uuid.UUID         `json:"product_id" validate:"required"`
	Color      string            `json:"color" validate:"required,min=1,max=50"`
	ImageURL   string            `json:"image_url" validate:"required,url"`
	Transforms models.Transforms `json:"transforms"`
}

type UpdateDesignRequest struct {
	Color      string              `json:"color,omitempty" validate:"omitempty,min=1,max=50"`
	ImageURL   string              `json:"image_url,omitempty" validate:"omitempty,url"`
	Transforms *models.Transforms  `json:"transforms,omitempty"`
	Status     models.DesignStatus `json:"status,omitempty"`
}

func NewDesignService(designs repository.DesignStore, products repository.ProductStore, storage *StorageService) *DesignService {
	return &DesignService{
		designs:  designs,
		products: products,
		storage:  storage,
	}
}

func (s *DesignService) CreateDesign(actor Actor, req *CreateDesignRequest) (*models.Design, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, err, "invalid design")
	}

	product, err := s.products.FindByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal(err, "failed to load product")
	}

	if !product.Active {
		return nil, apperrors.Validation("Product is not available")
	}

	if !product.HasColor(req.Color) {
		return nil, apperrors.Validationf("Color %s is not available for this product", req.Color)
	}

	design := &models.Design{
		UserID:     actor.ID,
		ProductID:  req.ProductID,
		Color:      req.Color,
		ImageURL:   req.ImageURL,
		Transforms: req.Transforms,
		Status:     models.DesignStatusPending,
	}

	if err := s.designs.Create(design); err != nil {
		return nil, apperrors.Internal(err, "failed to create design")
	}

	return design, nil
}

func (s *DesignService) GetDesign(actor Actor, id uuid.UUID) (*models.Design, error) {
	design, err := s.designs.FindByIDWithRelations(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Design not found")
		}
		return nil, apperrors.Internal(err, "failed to load design")
	}

	if err := CanViewDesign(actor, design); err != nil {
		return nil, err
	}

	return design, nil
}

func (s *DesignService) GetUserDesigns(actor Actor, params utils.PaginationParams) ([]models.Design, int64, error) {
	filter := models.DesignFilter{UserID: &actor.ID}
	designs, total, err := s.designs.FindAllWithRelations(filter, params)
	if err != nil {
		return nil, 0, apperrors.Internal(err, "failed to fetch designs")
	}
	return designs, total, nil
}

func (s *DesignService) GetPendingDesigns(params utils.PaginationParams) ([]models.Design, int64, error) {
	status := models.DesignStatusPending
	return s.ListDesigns(models.DesignFilter{Status: &status}, params)
}

// ListDesigns serves the reviewer queue; role gating happens at the router.
func (s *DesignService) ListDesigns(filter models.DesignFilter, params utils.PaginationParams) ([]models.Design, int64, error) {
	designs, total, err := s.designs.FindAllWithRelations(filter, params)
	if err != nil {
		return nil, 0, apperrors.Internal(err, "failed to fetch designs")
	}
	return designs, total, nil
}

func (s *DesignService) UpdateDesign(actor Actor, id uuid.UUID, req *UpdateDesignRequest) (*models.Design, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, err, "invalid design update")
	}

	design, err := s.designs.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Design not found")
		}
		return nil, apperrors.Internal(err, "failed to load design")
	}

	if err := CanUpdateDesign(actor, design); err != nil {
		return nil, err
	}

	// Status never moves through a plain update, whatever the role. Clients
	// get the ownership-flavored refusal the UI expects.
	if req.Status != "" {
		if actor.Role == models.UserRoleClient {
			return nil, apperrors.Forbidden("Clients cannot change design status")
		}
		return nil, apperrors.Validation("Design status can only be changed through review")
	}

	if design.IsTerminal() {
		return nil, apperrors.InvalidState("Only pending designs can be updated")
	}

	updates := make(map[string]interface{})
	if req.Color != "" {
		product, err := s.products.FindByID(design.ProductID)
		if err != nil {
			return nil, apperrors.Internal(err, "failed to load product")
		}
		if !product.HasColor(req.Color) {
			return nil, apperrors.Validationf("Color %s is not available for this product", req.Color)
		}
		updates["color"] = req.Color
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.Transforms != nil {
		updates["transforms"] = *req.Transforms
	}

	if len(updates) == 0 {
		return design, nil
	}

	updated, err := s.designs.Update(id, updates)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to update design")
	}

	return updated, nil
}

func (s *DesignService) DeleteDesign(actor Actor, id uuid.UUID) error {
	design, err := s.designs.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Design not found")
		}
		return apperrors.Internal(err, "failed to load design")
	}

	if err := CanDeleteDesign(actor, design); err != nil {
		return err
	}

	if err := s.designs.Delete(id); err != nil {
		return apperrors.Internal(err, "failed to delete design")
	}

	// Removing the uploaded stamp is advisory; its failure never surfaces.
	if s.storage != nil && design.ImageURL != "" {
		go func(url string) {
			if err := s.storage.DeleteFileByURL(url); err != nil {
				logrus.WithError(err).WithField("url", url).Warn("failed to delete stamp image")
			}
		}(design.ImageURL)
	}

	return nil
}
