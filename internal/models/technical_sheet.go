// internal/models/technical_sheet.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// TechnicalSheet is the production summary derived from an approved design.
// It is never persisted; it is assembled on demand from the design, its
// product and owner, and the approving review.
type TechnicalSheet struct {
	DesignID       uuid.UUID           `json:"design_id"`
	ApprovedAt     time.Time           `json:"approved_at"`
	Product        SheetProduct        `json:"product"`
	Specifications SheetSpecifications `json:"specifications"`
	Client         SheetClient         `json:"client"`
	Production     SheetProduction     `json:"production"`
}

type SheetProduct struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	BaseModel string    `json:"base_model"`
}

type SheetSpecifications struct {
	Color         string     `json:"color"`
	StampImageURL string     `json:"stamp_image_url"`
	Transforms    Transforms `json:"transforms"`
	PrintArea     PrintArea  `json:"print_area"`
}

// PrintArea is the computed physical stamp region in centimeters.
type PrintArea struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Position string  `json:"position"`
}

type SheetClient struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type SheetProduction struct {
	EstimatedQuantity int    `json:"estimated_quantity"`
	Notes             string `json:"notes"`
}
