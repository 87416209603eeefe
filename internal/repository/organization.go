// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error)
	FindByOwnerPaginated(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*model.Organization, int64, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Preload("Emails").Preload("Phones").First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Contact records go first to keep the FKs satisfied
		if err := tx.Where("organization_id = ?", id).Delete(&model.Email{}).Error; err != nil {
			return fmt.Errorf("deleting organization emails: %w", err)
		}
		if err := tx.Where("organization_id = ?", id).Delete(&model.Phone{}).Error; err != nil {
			return fmt.Errorf("deleting organization phones: %w", err)
		}

		result := tx.Delete(&model.Organization{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting organization: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrOrganizationNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// FindAllPaginated returns a paginated list of organizations
func (r *OrganizationRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error) {
	var orgs []*model.Organization
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Organization{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	result := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&orgs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated organizations: %w", result.Error)
	}

	return orgs, count, nil
}

// FindByOwnerPaginated returns a paginated list of organizations owned by the
// given user. Pagination applies after the ownership filter.
func (r *OrganizationRepository) FindByOwnerPaginated(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*model.Organization, int64, error) {
	var orgs []*model.Organization
	var count int64

	scope := r.db.WithContext(ctx).Model(&model.Organization{}).Where("owner_id = ?", ownerID)
	if err := scope.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Offset(offset).Limit(limit).Find(&orgs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated organizations: %w", result.Error)
	}

	return orgs, count, nil
}
