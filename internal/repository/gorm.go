// internal/repository/gorm.go
package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

// NewStores builds the GORM-backed store set over db. The same constructor
// serves both the process-wide set and the transaction-bound set handed out
// by the unit of work.
func NewStores(db *gorm.DB) Stores {
	return Stores{
		Designs:  &gormDesignStore{db: db},
		Products: &gormProductStore{db: db},
		Reviews:  &gormReviewStore{db: db},
		Users:    &gormUserStore{db: db},
	}
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(fn func(s Stores) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStores(tx))
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Designs

type gormDesignStore struct {
	db *gorm.DB
}

func (s *gormDesignStore) Create(design *models.Design) error {
	return s.db.Create(design).Error
}

func (s *gormDesignStore) FindByID(id uuid.UUID) (*models.Design, error) {
	var design models.Design
	if err := s.db.First(&design, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &design, nil
}

func (s *gormDesignStore) FindByIDWithRelations(id uuid.UUID) (*models.Design, error) {
	var design models.Design
	if err := s.db.Preload("User").Preload("Product").First(&design, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &design, nil
}

func (s *gormDesignStore) FindAllWithRelations(filter models.DesignFilter, params utils.PaginationParams) ([]models.Design, int64, error) {
	query := s.db.Model(&models.Design{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	allowedSortFields := []string{"created_at", "updated_at", "status", "color"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var designs []models.Design
	if err := query.Preload("User").Preload("Product").Find(&designs).Error; err != nil {
		return nil, 0, err
	}

	return designs, total, nil
}

func (s *gormDesignStore) Update(id uuid.UUID, updates map[string]interface{}) (*models.Design, error) {
	result := s.db.Model(&models.Design{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}

func (s *gormDesignStore) Transition(id uuid.UUID, from, to models.DesignStatus) (bool, error) {
	result := s.db.Model(&models.Design{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *gormDesignStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Design{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Products

type gormProductStore struct {
	db *gorm.DB
}

func (s *gormProductStore) Create(product *models.Product) error {
	return s.db.Create(product).Error
}

func (s *gormProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *gormProductStore) FindAll(filter models.ProductFilter, params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "category"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *gormProductStore) Update(id uuid.UUID, updates map[string]interface{}) (*models.Product, error) {
	result := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}

func (s *gormProductStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reviews

type gormReviewStore struct {
	db *gorm.DB
}

func (s *gormReviewStore) Create(review *models.Review) error {
	return s.db.Create(review).Error
}

func (s *gormReviewStore) FindByDesignID(designID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("design_id = ?", designID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *gormReviewStore) FindByDesignIDWithRelations(designID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Preload("Reviewer").Preload("Design").
		Where("design_id = ?", designID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *gormReviewStore) FindAll(params utils.PaginationParams) ([]models.Review, int64, error) {
	query := s.db.Model(&models.Review{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	allowedSortFields := []string{"created_at", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var reviews []models.Review
	if err := query.Preload("Reviewer").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// Users

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *gormUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *gormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
