// internal/services/design_service_test.go
package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stamperia/stamperia-backend/internal/apperrors"
	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/services"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

type designFixture struct {
	designs  *fakeDesignStore
	products *fakeProductStore
	service  *services.DesignService
}

func newDesignFixture() *designFixture {
	designs := newFakeDesignStore()
	products := newFakeProductStore()

	return &designFixture{
		designs:  designs,
		products: products,
		service:  services.NewDesignService(designs, products, nil),
	}
}

func (f *designFixture) seedProduct(colors ...string) *models.Product {
	product := &models.Product{
		Name:            "Classic Tee",
		Category:        "t-shirt",
		AvailableColors: pq.StringArray(colors),
		Price:           19.90,
		Active:          true,
	}
	return f.products.put(product)
}

func clientActor() services.Actor {
	return services.Actor{ID: uuid.New(), Role: models.UserRoleClient}
}

func validCreateRequest(productID uuid.UUID) *services.CreateDesignRequest {
	return &services.CreateDesignRequest{
		ProductID: productID,
		Color:     "black",
		ImageURL:  "https://cdn.example.com/stamps/skull.png",
		Transforms: models.Transforms{
			Scale: models.Vector3{X: 1, Y: 1, Z: 1},
		},
	}
}

func TestCreateDesign(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black", "white")
	actor := clientActor()

	design, err := f.service.CreateDesign(actor, validCreateRequest(product.ID))
	require.NoError(t, err)

	assert.Equal(t, actor.ID, design.UserID)
	assert.Equal(t, product.ID, design.ProductID)
	assert.Equal(t, models.DesignStatusPending, design.Status)
	assert.NotEqual(t, uuid.Nil, design.ID)
}

func TestCreateDesignUnknownProduct(t *testing.T) {
	f := newDesignFixture()

	_, err := f.service.CreateDesign(clientActor(), validCreateRequest(uuid.New()))
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateDesignInactiveProduct(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black")
	product.Active = false

	_, err := f.service.CreateDesign(clientActor(), validCreateRequest(product.ID))
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCreateDesignUnavailableColor(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black", "white")

	req := validCreateRequest(product.ID)
	req.Color = "purple"

	_, err := f.service.CreateDesign(clientActor(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "purple")
}

func TestCreateDesignMissingFields(t *testing.T) {
	f := newDesignFixture()
	f.seedProduct("black")

	_, err := f.service.CreateDesign(clientActor(), &services.CreateDesignRequest{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestGetDesignOwnership(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black")
	owner := clientActor()

	design, err := f.service.CreateDesign(owner, validCreateRequest(product.ID))
	require.NoError(t, err)

	// The owner and reviewer roles can read it.
	_, err = f.service.GetDesign(owner, design.ID)
	assert.NoError(t, err)
	_, err = f.service.GetDesign(services.Actor{ID: uuid.New(), Role: models.UserRoleDesigner}, design.ID)
	assert.NoError(t, err)
	_, err = f.service.GetDesign(services.Actor{ID: uuid.New(), Role: models.UserRoleAdmin}, design.ID)
	assert.NoError(t, err)

	// Another client cannot.
	_, err = f.service.GetDesign(clientActor(), design.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestGetUserDesignsScopedToOwner(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black")
	owner := clientActor()
	other := clientActor()

	_, err := f.service.CreateDesign(owner, validCreateRequest(product.ID))
	require.NoError(t, err)
	_, err = f.service.CreateDesign(other, validCreateRequest(product.ID))
	require.NoError(t, err)

	designs, total, err := f.service.GetUserDesigns(owner, utils.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, designs, 1)
	assert.Equal(t, owner.ID, designs[0].UserID)
}

func TestUpdateDesign(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black", "white")
	owner := clientActor()

	design, err := f.service.CreateDesign(owner, validCreateRequest(product.ID))
	require.NoError(t, err)

	newTransforms := models.Transforms{
		Position: models.Vector3{X: 0.5},
		Scale:    models.Vector3{X: 2, Y: 2, Z: 1},
	}
	updated, err := f.service.UpdateDesign(owner, design.ID, &services.UpdateDesignRequest{
		Color:      "white",
		Transforms: &newTransforms,
	})
	require.NoError(t, err)

	assert.Equal(t, "white", updated.Color)
	assert.Equal(t, newTransforms, updated.Transforms)
	assert.Equal(t, models.DesignStatusPending, updated.Status)
}

func TestUpdateDesignNotOwner(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black")
	owner := clientActor()

	design, err := f.service.CreateDesign(owner, validCreateRequest(product.ID))
	require.NoError(t, err)

	_, err = f.service.UpdateDesign(clientActor(), design.ID, &services.UpdateDesignRequest{Color: "black"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestUpdateDesignStatusRejectedPerRole(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black")
	owner := clientActor()

	design, err := f.service.CreateDesign(owner, validCreateRequest(product.ID))
	require.NoError(t, err)

	// A client smuggling a status change gets a hard refusal.
	_, err = f.service.UpdateDesign(owner, design.ID, &services.UpdateDesignRequest{
		Status: models.DesignStatusApproved,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	stored, err := f.designs.FindByID(design.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DesignStatusPending, stored.Status)
}

func TestUpdateDesignTerminalState(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black", "white")
	owner := clientActor()

	design, err := f.service.CreateDesign(owner, validCreateRequest(product.ID))
	require.NoError(t, err)

	ok, err := f.designs.Transition(design.ID, models.DesignStatusPending, models.DesignStatusApproved)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.service.UpdateDesign(owner, design.ID, &services.UpdateDesignRequest{Color: "white"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestUpdateDesignUnavailableColor(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black", "white")
	owner := clientActor()

	design, err := f.service.CreateDesign(owner, validCreateRequest(product.ID))
	require.NoError(t, err)

	_, err = f.service.UpdateDesign(owner, design.ID, &services.UpdateDesignRequest{Color: "purple"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestDeleteDesign(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black")
	owner := clientActor()

	design, err := f.service.CreateDesign(owner, validCreateRequest(product.ID))
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteDesign(owner, design.ID))

	_, err = f.designs.FindByID(design.ID)
	assert.Error(t, err)
}

func TestDeleteDesignAuthorization(t *testing.T) {
	f := newDesignFixture()
	product := f.seedProduct("black")
	owner := clientActor()

	design, err := f.service.CreateDesign(owner, validCreateRequest(product.ID))
	require.NoError(t, err)

	// Neither another client nor a designer may delete it.
	err = f.service.DeleteDesign(clientActor(), design.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	err = f.service.DeleteDesign(services.Actor{ID: uuid.New(), Role: models.UserRoleDesigner}, design.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	// Admins may.
	err = f.service.DeleteDesign(services.Actor{ID: uuid.New(), Role: models.UserRoleAdmin}, design.ID)
	assert.NoError(t, err)
}
