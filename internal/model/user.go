// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"type:text;not null" json:"-"`
	FullName       string    `gorm:"type:text" json:"full_name,omitempty"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Emails []Email `gorm:"foreignKey:UserID" json:"emails,omitempty"`
}

// BeforeCreate assigns the ID client-side when the caller did not set one.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
