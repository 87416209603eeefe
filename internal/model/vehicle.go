// internal/model/vehicle.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FinancingType string

const (
	FinancingCash    FinancingType = "cash"
	FinancingFinance FinancingType = "finance"
	FinancingLease   FinancingType = "lease"
)

type Vehicle struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	VIN           string         `gorm:"type:text;uniqueIndex;not null" json:"vin"`
	FinancingType *FinancingType `gorm:"type:text" json:"financing_type,omitempty"`
	Make          *string        `gorm:"type:text" json:"make,omitempty"`
	Model         *string        `gorm:"type:text" json:"model,omitempty"`
	Year          *int           `json:"year,omitempty"`
	Color         *string        `gorm:"type:text" json:"color,omitempty"`
	Mileage       *int           `json:"mileage,omitempty"`
	Price         *float64       `json:"price,omitempty"`
	MSRP          *float64       `gorm:"column:msrp" json:"msrp,omitempty"`
	HasLien       *bool          `json:"has_lien,omitempty"`

	OwnerID        uuid.UUID  `gorm:"type:uuid;not null" json:"owner_id"`
	OrganizationID *uuid.UUID `gorm:"type:uuid" json:"organization_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerUser    User          `gorm:"foreignKey:OwnerID" json:"-"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

func (v *Vehicle) BeforeCreate(*gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// Owner satisfies auth.Ownable.
func (v *Vehicle) Owner() uuid.UUID {
	return v.OwnerID
}
