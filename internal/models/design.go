// internal/models/design.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Design struct {
	BaseModel
	UserID     uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID    `json:"product_id" gorm:"type:uuid;not null;index"`
	Color      string       `json:"color" gorm:"size:50;not null"`
	ImageURL   string       `json:"image_url" gorm:"size:512;not null"`
	Transforms Transforms   `json:"transforms" gorm:"type:jsonb"`
	Status     DesignStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	// Relationships
	User    User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:DesignID"`
}

// IsTerminal reports whether the design has left the review queue. Approved
// and rejected are terminal states; no transition leads out of them.
func (d *Design) IsTerminal() bool {
	return d.Status == DesignStatusApproved || d.Status == DesignStatusRejected
}

// DesignFilter narrows design listings.
type DesignFilter struct {
	UserID    *uuid.UUID    `json:"user_id,omitempty"`
	ProductID *uuid.UUID    `json:"product_id,omitempty"`
	Status    *DesignStatus `json:"status,omitempty"`
	DateFrom  *time.Time    `json:"date_from,omitempty"`
	DateTo    *time.Time    `json:"date_to,omitempty"`
}
