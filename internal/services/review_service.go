// internal/services/review_service.go
package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stamperia/stamperia-backend/internal/apperrors"
	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/repository"
)

// Print area base dimensions in centimeters. The physical stamp region
// scales linearly with the applied scale factor; the same base region is
// used for every product.
const (
	printAreaBaseWidth  = 30.0
	printAreaBaseHeight = 40.0
	printAreaPosition   = "center-front"
)

type ReviewService struct {
	designs       repository.DesignStore
	reviews       repository.ReviewStore
	uow           repository.UnitOfWork
	notifications *NotificationService
}

func NewReviewService(designs repository.DesignStore, reviews repository.ReviewStore, uow repository.UnitOfWork, notifications *NotificationService) *ReviewService {
	return &ReviewService{
		designs:       designs,
		reviews:       reviews,
		uow:           uow,
		notifications: notifications,
	}
}

// ApproveDesign moves a pending design to approved and records the decision.
// The comment is optional.
func (s *ReviewService) ApproveDesign(designID, reviewerID uuid.UUID, comment string) (*models.Review, error) {
	return s.decide(designID, reviewerID, models.DesignStatusApproved, models.ReviewStatusApproved, comment)
}

// RejectDesign moves a pending design to rejected. A comment explaining the
// rejection is mandatory and is checked before any state is touched.
func (s *ReviewService) RejectDesign(designID, reviewerID uuid.UUID, comment string) (*models.Review, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, apperrors.Validation("Comment is required when rejecting a design")
	}
	return s.decide(designID, reviewerID, models.DesignStatusRejected, models.ReviewStatusRejected, comment)
}

// decide runs the guarded transition and the review insert in one
// transaction. The status update carries a WHERE status = 'pending' guard,
// so of two concurrent reviewers exactly one wins; the loser observes zero
// affected rows and fails as if the design had already left pending.
func (s *ReviewService) decide(designID, reviewerID uuid.UUID, to models.DesignStatus, decision models.ReviewStatus, comment string) (*models.Review, error) {
	var review *models.Review

	err := s.uow.Do(func(st repository.Stores) error {
		design, err := st.Designs.FindByID(designID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.NotFound("Design not found")
			}
			return apperrors.Internal(err, "failed to load design")
		}

		if design.Status != models.DesignStatusPending {
			return apperrors.InvalidState("Only pending designs can be reviewed")
		}

		ok, err := st.Designs.Transition(designID, models.DesignStatusPending, to)
		if err != nil {
			return apperrors.Internal(err, "failed to update design status")
		}
		if !ok {
			return apperrors.InvalidState("Only pending designs can be reviewed")
		}

		review = &models.Review{
			DesignID:   designID,
			ReviewerID: reviewerID,
			Status:     decision,
			Comment:    comment,
		}
		if err := st.Reviews.Create(review); err != nil {
			return apperrors.Internal(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.notifyDecision(designID, review)

	return review, nil
}

// GetDesignReviews returns every review of a design, newest first. Callers
// gate access; the workflow itself has no authorization rules here.
func (s *ReviewService) GetDesignReviews(designID uuid.UUID) ([]models.Review, error) {
	if _, err := s.designs.FindByID(designID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Design not found")
		}
		return nil, apperrors.Internal(err, "failed to load design")
	}

	reviews, err := s.reviews.FindByDesignIDWithRelations(designID)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to fetch reviews")
	}
	return reviews, nil
}

// GenerateTechnicalSheet projects an approved design into a production
// sheet. It is side-effect free; nothing is persisted.
func (s *ReviewService) GenerateTechnicalSheet(designID uuid.UUID) (*models.TechnicalSheet, error) {
	design, err := s.designs.FindByIDWithRelations(designID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Design not found")
		}
		return nil, apperrors.Internal(err, "failed to load design")
	}

	if design.Status != models.DesignStatusApproved {
		return nil, apperrors.InvalidState("Only approved designs can generate technical sheets")
	}

	reviews, err := s.reviews.FindByDesignID(designID)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to fetch reviews")
	}

	var approval *models.Review
	for i := range reviews {
		if reviews[i].Status == models.ReviewStatusApproved {
			approval = &reviews[i]
			break
		}
	}
	if approval == nil {
		// An approved design always carries its approving review; a miss
		// means the data store is corrupted.
		return nil, apperrors.Invariant("No approval review found")
	}

	notes := approval.Comment
	if notes == "" {
		notes = "No additional notes"
	}

	sheet := &models.TechnicalSheet{
		DesignID:   design.ID,
		ApprovedAt: approval.CreatedAt,
		Product: models.SheetProduct{
			ID:        design.Product.ID,
			Name:      design.Product.Name,
			Category:  design.Product.Category,
			BaseModel: design.Product.ThumbnailURL,
		},
		Specifications: models.SheetSpecifications{
			Color:         design.Color,
			StampImageURL: design.ImageURL,
			Transforms:    design.Transforms,
			PrintArea:     CalculatePrintArea(design.Transforms),
		},
		Client: models.SheetClient{
			ID:    design.User.ID,
			Name:  design.User.Name,
			Email: design.User.Email,
		},
		Production: models.SheetProduction{
			EstimatedQuantity: 1,
			Notes:             notes,
		},
	}

	return sheet, nil
}

// CalculatePrintArea derives the physical stamp dimensions from the applied
// scale. No bounds clamping and no rotation-aware bounding box; width and
// height follow scale.X and scale.Y linearly.
func CalculatePrintArea(transforms models.Transforms) models.PrintArea {
	return models.PrintArea{
		Width:    printAreaBaseWidth * transforms.Scale.X,
		Height:   printAreaBaseHeight * transforms.Scale.Y,
		Position: printAreaPosition,
	}
}

// notifyDecision emails the design owner about the outcome. Best effort; a
// failed mail never affects the review result.
func (s *ReviewService) notifyDecision(designID uuid.UUID, review *models.Review) {
	if s.notifications == nil {
		return
	}

	design, err := s.designs.FindByIDWithRelations(designID)
	if err != nil {
		logrus.WithError(err).WithField("design_id", designID).Warn("failed to load design for notification")
		return
	}

	if err := s.notifications.SendDesignDecisionEmail(design, review); err != nil {
		logrus.WithError(err).WithField("design_id", designID).Warn("failed to send decision email")
	}
}
