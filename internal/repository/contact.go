// internal/repository/contact.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepositoryIface interface {
	CreateEmail(ctx context.Context, email *model.Email) error
	CreatePhone(ctx context.Context, phone *model.Phone) error
	FindEmailsByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Email, error)
	FindPhonesByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Phone, error)
	DeleteEmail(ctx context.Context, id uuid.UUID) error
	DeletePhone(ctx context.Context, id uuid.UUID) error
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// CreateEmail inserts an email record. When the record is flagged primary, any
// existing primary for the same parent is demoted in the same transaction.
func (r *ContactRepository) CreateEmail(ctx context.Context, email *model.Email) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if email.IsPrimary {
			scope := tx.Model(&model.Email{})
			switch {
			case email.OrganizationID != nil:
				scope = scope.Where("organization_id = ?", *email.OrganizationID)
			case email.UserID != nil:
				scope = scope.Where("user_id = ?", *email.UserID)
			default:
				return fmt.Errorf("%w: email has no parent", domain.ErrInvalidInput)
			}
			if err := scope.Update("is_primary", false).Error; err != nil {
				return fmt.Errorf("demoting primary email: %w", err)
			}
		}

		if err := tx.Create(email).Error; err != nil {
			return fmt.Errorf("creating email: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// CreatePhone inserts a phone record with the same primary-flag handling as
// CreateEmail.
func (r *ContactRepository) CreatePhone(ctx context.Context, phone *model.Phone) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if phone.IsPrimary && phone.OrganizationID != nil {
			if err := tx.Model(&model.Phone{}).
				Where("organization_id = ?", *phone.OrganizationID).
				Update("is_primary", false).Error; err != nil {
				return fmt.Errorf("demoting primary phone: %w", err)
			}
		}

		if err := tx.Create(phone).Error; err != nil {
			return fmt.Errorf("creating phone: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ContactRepository) FindEmailsByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Email, error) {
	var emails []model.Email
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&emails).Error; err != nil {
		return nil, fmt.Errorf("finding organization emails: %w", err)
	}
	return emails, nil
}

func (r *ContactRepository) FindPhonesByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Phone, error) {
	var phones []model.Phone
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&phones).Error; err != nil {
		return nil, fmt.Errorf("finding organization phones: %w", err)
	}
	return phones, nil
}

func (r *ContactRepository) DeleteEmail(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Email{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting email: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) DeletePhone(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Phone{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting phone: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}
