// internal/services/product_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/stamperia/stamperia-backend/internal/apperrors"
	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/repository"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

type ProductService struct {
	products repository.ProductStore
}

type CreateProductRequest struct {
	Name            string   `json:"name" validate:"required,min=3,max=255"`
	Category        string   `json:"category" validate:"required"`
	BaseModelURL    string   `json:"base_model_url" validate:"omitempty,url"`
	AvailableColors []string `json:"available_colors" validate:"required,min=1,dive,min=1"`
	Price           float64  `json:"price" validate:"required,min=0"`
	ThumbnailURL    string   `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Description     string   `json:"description,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

type UpdateProductRequest struct {
	Name            string   `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Category        string   `json:"category,omitempty"`
	BaseModelURL    string   `json:"base_model_url,omitempty" validate:"omitempty,url"`
	AvailableColors []string `json:"available_colors,omitempty" validate:"omitempty,min=1,dive,min=1"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	ThumbnailURL    string   `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Description     string   `json:"description,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

func NewProductService(products repository.ProductStore) *ProductService {
	return &ProductService{products: products}
}

// GetProducts lists the catalog. Unless the caller filters explicitly, only
// active products show up.
func (s *ProductService) GetProducts(filter models.ProductFilter, params utils.PaginationParams) ([]models.Product, int64, error) {
	if filter.Active == nil {
		active := true
		filter.Active = &active
	}

	products, total, err := s.products.FindAll(filter, params)
	if err != nil {
		return nil, 0, apperrors.Internal(err, "failed to fetch products")
	}
	return products, total, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal(err, "failed to load product")
	}
	return product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, err, "invalid product")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := &models.Product{
		Name:            req.Name,
		Category:        req.Category,
		BaseModelURL:    req.BaseModelURL,
		AvailableColors: pq.StringArray(req.AvailableColors),
		Price:           req.Price,
		ThumbnailURL:    req.ThumbnailURL,
		Description:     req.Description,
		Active:          active,
	}

	if err := s.products.Create(product); err != nil {
		return nil, apperrors.Internal(err, "failed to create product")
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, err, "invalid product update")
	}

	if _, err := s.products.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal(err, "failed to load product")
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.BaseModelURL != "" {
		updates["base_model_url"] = req.BaseModelURL
	}
	if req.AvailableColors != nil {
		updates["available_colors"] = pq.StringArray(req.AvailableColors)
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ThumbnailURL != "" {
		updates["thumbnail_url"] = req.ThumbnailURL
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	product, err := s.products.Update(id, updates)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to update product")
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Product not found")
		}
		return apperrors.Internal(err, "failed to delete product")
	}
	return nil
}
