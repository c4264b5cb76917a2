// internal/services/fakes_test.go
package services_test

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/repository"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

// In-memory stores backing the service tests. They mirror the persistence
// contract closely enough that the services cannot tell the difference:
// FindByID hands out copies, Transition checks the live record, and reviews
// come back newest first.

type fakeDesignStore struct {
	mu      sync.Mutex
	designs map[uuid.UUID]*models.Design
	// afterFind runs once after the next FindByID returns its copy, which
	// lets a test flip the live record under a caller holding a stale read.
	afterFind func()
}

func newFakeDesignStore() *fakeDesignStore {
	return &fakeDesignStore{designs: make(map[uuid.UUID]*models.Design)}
}

func (s *fakeDesignStore) put(design *models.Design) *models.Design {
	s.mu.Lock()
	defer s.mu.Unlock()
	if design.ID == uuid.Nil {
		design.ID = uuid.New()
	}
	if design.CreatedAt.IsZero() {
		design.CreatedAt = time.Now()
	}
	s.designs[design.ID] = design
	return design
}

func (s *fakeDesignStore) Create(design *models.Design) error {
	s.put(design)
	return nil
}

func (s *fakeDesignStore) FindByID(id uuid.UUID) (*models.Design, error) {
	s.mu.Lock()
	design, ok := s.designs[id]
	var copied models.Design
	if ok {
		copied = *design
	}
	s.mu.Unlock()

	if !ok {
		return nil, repository.ErrNotFound
	}
	if s.afterFind != nil {
		hook := s.afterFind
		s.afterFind = nil
		hook()
	}
	return &copied, nil
}

func (s *fakeDesignStore) FindByIDWithRelations(id uuid.UUID) (*models.Design, error) {
	return s.FindByID(id)
}

func (s *fakeDesignStore) FindAllWithRelations(filter models.DesignFilter, params utils.PaginationParams) ([]models.Design, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Design
	for _, design := range s.designs {
		if filter.UserID != nil && design.UserID != *filter.UserID {
			continue
		}
		if filter.ProductID != nil && design.ProductID != *filter.ProductID {
			continue
		}
		if filter.Status != nil && design.Status != *filter.Status {
			continue
		}
		out = append(out, *design)
	}
	return out, int64(len(out)), nil
}

func (s *fakeDesignStore) Update(id uuid.UUID, updates map[string]interface{}) (*models.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	design, ok := s.designs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if color, ok := updates["color"].(string); ok {
		design.Color = color
	}
	if imageURL, ok := updates["image_url"].(string); ok {
		design.ImageURL = imageURL
	}
	if transforms, ok := updates["transforms"].(models.Transforms); ok {
		design.Transforms = transforms
	}
	copied := *design
	return &copied, nil
}

func (s *fakeDesignStore) Transition(id uuid.UUID, from, to models.DesignStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	design, ok := s.designs[id]
	if !ok || design.Status != from {
		return false, nil
	}
	design.Status = to
	return true, nil
}

func (s *fakeDesignStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.designs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.designs, id)
	return nil
}

type fakeProductStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]*models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[uuid.UUID]*models.Product)}
}

func (s *fakeProductStore) put(product *models.Product) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.products[product.ID] = product
	return product
}

func (s *fakeProductStore) Create(product *models.Product) error {
	s.put(product)
	return nil
}

func (s *fakeProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (s *fakeProductStore) FindAll(filter models.ProductFilter, params utils.PaginationParams) ([]models.Product, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Product
	for _, product := range s.products {
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if filter.Active != nil && product.Active != *filter.Active {
			continue
		}
		out = append(out, *product)
	}
	return out, int64(len(out)), nil
}

func (s *fakeProductStore) Update(id uuid.UUID, updates map[string]interface{}) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (s *fakeProductStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

type fakeReviewStore struct {
	mu      sync.Mutex
	reviews []models.Review
	clock   time.Time
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{clock: time.Now()}
}

func (s *fakeReviewStore) Create(review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	// Monotonic timestamps so newest-first ordering is deterministic.
	s.clock = s.clock.Add(time.Second)
	review.CreatedAt = s.clock
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *fakeReviewStore) FindByDesignID(designID uuid.UUID) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Review
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if s.reviews[i].DesignID == designID {
			out = append(out, s.reviews[i])
		}
	}
	return out, nil
}

func (s *fakeReviewStore) FindByDesignIDWithRelations(designID uuid.UUID) ([]models.Review, error) {
	return s.FindByDesignID(designID)
}

func (s *fakeReviewStore) FindAll(params utils.PaginationParams) ([]models.Review, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, int64(len(out)), nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *fakeUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

// fakeUnitOfWork runs the callback against the same stores without any
// transaction semantics.
type fakeUnitOfWork struct {
	stores repository.Stores
}

func (u *fakeUnitOfWork) Do(fn func(s repository.Stores) error) error {
	return fn(u.stores)
}
