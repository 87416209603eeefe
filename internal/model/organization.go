// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerUser User    `gorm:"foreignKey:OwnerID" json:"-"`
	Emails    []Email `gorm:"foreignKey:OrganizationID" json:"emails,omitempty"`
	Phones    []Phone `gorm:"foreignKey:OrganizationID" json:"phones,omitempty"`
}

func (o *Organization) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Owner satisfies auth.Ownable.
func (o *Organization) Owner() uuid.UUID {
	return o.OwnerID
}
