// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name            string         `json:"name" gorm:"size:255;not null"`
	Category        string         `json:"category" gorm:"size:100;index"`
	BaseModelURL    string         `json:"base_model_url" gorm:"size:512"`
	AvailableColors pq.StringArray `json:"available_colors" gorm:"type:text[]"`
	Price           float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	ThumbnailURL    string         `json:"thumbnail_url,omitempty" gorm:"size:512"`
	Description     string         `json:"description,omitempty" gorm:"type:text"`
	Active          bool           `json:"active" gorm:"default:true;index"`

	// Relationships
	Designs []Design `json:"designs,omitempty" gorm:"foreignKey:ProductID"`
}

// HasColor reports whether the color is declared available for this product.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.AvailableColors {
		if c == color {
			return true
		}
	}
	return false
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string   `json:"category,omitempty"`
	Active   *bool    `json:"active,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}
