// internal/services/review_service_test.go
package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stamperia/stamperia-backend/internal/apperrors"
	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/repository"
	"github.com/stamperia/stamperia-backend/internal/services"
)

type reviewFixture struct {
	designs  *fakeDesignStore
	reviews  *fakeReviewStore
	service  *services.ReviewService
	reviewer uuid.UUID
}

func newReviewFixture() *reviewFixture {
	designs := newFakeDesignStore()
	reviews := newFakeReviewStore()
	uow := &fakeUnitOfWork{stores: repository.Stores{
		Designs: designs,
		Reviews: reviews,
	}}

	return &reviewFixture{
		designs:  designs,
		reviews:  reviews,
		service:  services.NewReviewService(designs, reviews, uow, nil),
		reviewer: uuid.New(),
	}
}

func (f *reviewFixture) seedDesign(status models.DesignStatus) *models.Design {
	design := &models.Design{
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Color:     "black",
		ImageURL:  "https://cdn.example.com/stamps/skull.png",
		Transforms: models.Transforms{
			Scale: models.Vector3{X: 1, Y: 1, Z: 1},
		},
		Status: status,
	}
	return f.designs.put(design)
}

func TestApproveDesign(t *testing.T) {
	f := newReviewFixture()
	design := f.seedDesign(models.DesignStatusPending)

	review, err := f.service.ApproveDesign(design.ID, f.reviewer, "looks great")
	require.NoError(t, err)

	assert.Equal(t, models.ReviewStatusApproved, review.Status)
	assert.Equal(t, design.ID, review.DesignID)
	assert.Equal(t, f.reviewer, review.ReviewerID)
	assert.Equal(t, "looks great", review.Comment)

	stored, err := f.designs.FindByID(design.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DesignStatusApproved, stored.Status)
}

func TestApproveDesignWithoutComment(t *testing.T) {
	f := newReviewFixture()
	design := f.seedDesign(models.DesignStatusPending)

	review, err := f.service.ApproveDesign(design.ID, f.reviewer, "")
	require.NoError(t, err)
	assert.Empty(t, review.Comment)
}

func TestRejectDesign(t *testing.T) {
	f := newReviewFixture()
	design := f.seedDesign(models.DesignStatusPending)

	review, err := f.service.RejectDesign(design.ID, f.reviewer, "logo is blurry")
	require.NoError(t, err)

	assert.Equal(t, models.ReviewStatusRejected, review.Status)
	assert.Equal(t, "logo is blurry", review.Comment)

	stored, err := f.designs.FindByID(design.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DesignStatusRejected, stored.Status)
}

func TestRejectDesignRequiresComment(t *testing.T) {
	f := newReviewFixture()
	design := f.seedDesign(models.DesignStatusPending)

	for _, comment := range []string{"", "   ", "\t\n"} {
		_, err := f.service.RejectDesign(design.ID, f.reviewer, comment)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	}

	// The comment check runs before anything else, so the design stays
	// pending and no review rows appear.
	stored, err := f.designs.FindByID(design.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DesignStatusPending, stored.Status)

	reviews, err := f.reviews.FindByDesignID(design.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestRejectCommentCheckedBeforeExistence(t *testing.T) {
	f := newReviewFixture()

	_, err := f.service.RejectDesign(uuid.New(), f.reviewer, "  ")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestReviewUnknownDesign(t *testing.T) {
	f := newReviewFixture()

	_, err := f.service.ApproveDesign(uuid.New(), f.reviewer, "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestReviewNonPendingDesign(t *testing.T) {
	f := newReviewFixture()

	for _, status := range []models.DesignStatus{models.DesignStatusApproved, models.DesignStatusRejected} {
		design := f.seedDesign(status)

		_, err := f.service.ApproveDesign(design.ID, f.reviewer, "")
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState), "approve of %s design", status)

		_, err = f.service.RejectDesign(design.ID, f.reviewer, "nope")
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState), "reject of %s design", status)
	}
}

func TestReviewTerminalStateIsFinal(t *testing.T) {
	f := newReviewFixture()
	design := f.seedDesign(models.DesignStatusPending)

	_, err := f.service.ApproveDesign(design.ID, f.reviewer, "")
	require.NoError(t, err)

	// A second decision of either kind fails and exactly one review exists.
	_, err = f.service.RejectDesign(design.ID, f.reviewer, "changed my mind")
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))

	reviews, err := f.reviews.FindByDesignID(design.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestReviewConcurrentLoser(t *testing.T) {
	f := newReviewFixture()
	design := f.seedDesign(models.DesignStatusPending)

	// Another reviewer lands between this caller's read and its guarded
	// status update. The stale read still sees pending; the update must not.
	f.designs.afterFind = func() {
		ok, err := f.designs.Transition(design.ID, models.DesignStatusPending, models.DesignStatusApproved)
		require.NoError(t, err)
		require.True(t, ok)
	}

	_, err := f.service.RejectDesign(design.ID, f.reviewer, "too late")
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))

	stored, err := f.designs.FindByID(design.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DesignStatusApproved, stored.Status)
}

func TestGetDesignReviewsNewestFirst(t *testing.T) {
	f := newReviewFixture()
	design := f.seedDesign(models.DesignStatusPending)

	first := &models.Review{DesignID: design.ID, ReviewerID: f.reviewer, Status: models.ReviewStatusRejected, Comment: "first"}
	second := &models.Review{DesignID: design.ID, ReviewerID: f.reviewer, Status: models.ReviewStatusApproved, Comment: "second"}
	require.NoError(t, f.reviews.Create(first))
	require.NoError(t, f.reviews.Create(second))

	reviews, err := f.service.GetDesignReviews(design.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "second", reviews[0].Comment)
	assert.Equal(t, "first", reviews[1].Comment)
}

func TestGetDesignReviewsUnknownDesign(t *testing.T) {
	f := newReviewFixture()

	_, err := f.service.GetDesignReviews(uuid.New())
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
