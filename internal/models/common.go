// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Vector3 is one axis triple of a stamp transform.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Transforms describes the placement of a stamp on a garment. It is stored
// as a single JSON column and must round-trip without losing precision or
// reordering components.
type Transforms struct {
	Position Vector3 `json:"position"`
	Rotation Vector3 `json:"rotation"`
	Scale    Vector3 `json:"scale"`
}

func (t Transforms) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *Transforms) Scan(value interface{}) error {
	if value == nil {
		*t = Transforms{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for transforms column", value)
	}

	return json.Unmarshal(bytes, t)
}

// Enums
type UserRole string

const (
	UserRoleClient   UserRole = "client"
	UserRoleDesigner UserRole = "designer"
	UserRoleAdmin    UserRole = "admin"
)

type DesignStatus string

const (
	DesignStatusPending  DesignStatus = "pending"
	DesignStatusApproved DesignStatus = "approved"
	DesignStatusRejected DesignStatus = "rejected"
)

type ReviewStatus string

const (
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)
