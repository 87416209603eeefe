// internal/model/contact.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhoneType string

const (
	PhoneMobile PhoneType = "mobile"
	PhoneHome   PhoneType = "home"
	PhoneWork   PhoneType = "work"
)

// Email is a contact address attached to either a user or an organization.
// Both foreign keys are nullable; intended use is exactly one of the two.
type Email struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Address        string     `gorm:"column:email_address;type:citext;not null" json:"email_address"`
	IsPrimary      bool       `gorm:"not null;default:false" json:"is_primary"`
	UserID         *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	OrganizationID *uuid.UUID `gorm:"type:uuid" json:"organization_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (e *Email) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Phone is a contact number attached to an organization. The user link was
// dropped by a later schema revision; see internal/migration.
type Phone struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Number         string     `gorm:"type:text;not null" json:"number"`
	PhoneType      PhoneType  `gorm:"type:text;not null" json:"phone_type"`
	IsPrimary      bool       `gorm:"not null;default:false" json:"is_primary"`
	OrganizationID *uuid.UUID `gorm:"type:uuid" json:"organization_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (p *Phone) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
