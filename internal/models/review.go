// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

// Review is the immutable audit record of a single review decision. Rows are
// inserted once by the review workflow and never updated or deleted.
type Review struct {
	BaseModel
	DesignID   uuid.UUID    `json:"design_id" gorm:"type:uuid;not null;index"`
	ReviewerID uuid.UUID    `json:"reviewer_id" gorm:"type:uuid;not null;index"`
	Status     ReviewStatus `json:"status" gorm:"type:varchar(20);not null"`
	Comment    string       `json:"comment,omitempty" gorm:"type:text"`

	// Relationships
	Design   Design `json:"design,omitempty" gorm:"foreignKey:DesignID"`
	Reviewer User   `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
}
