// internal/repository/vehicle.go
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

type VehicleRepositoryIface interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	FindByVIN(ctx context.Context, vin string) (*model.Vehicle, error)
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Vehicle, int64, error)
	FindByOwnerPaginated(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*model.Vehicle, int64, error)
}

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create inserts the vehicle. The VIN unique index backs up the service-level
// pre-check, so a concurrent insert of the same VIN still surfaces as
// ErrDuplicateVIN rather than a raw driver error.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	result := r.db.WithContext(ctx).Create(vehicle)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrDuplicateVIN
		}
		return fmt.Errorf("creating vehicle: %w", result.Error)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("finding vehicle: %w", err)
	}
	return &vehicle, nil
}

func (r *VehicleRepository) FindByVIN(ctx context.Context, vin string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Where("vin = ?", vin).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("finding vehicle by vin: %w", err)
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	result := r.db.WithContext(ctx).Save(vehicle)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrDuplicateVIN
		}
		return fmt.Errorf("updating vehicle: %w", result.Error)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// FindAllPaginated returns a paginated list of vehicles
func (r *VehicleRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Vehicle, int64, error) {
	var vehicles []*model.Vehicle
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Vehicle{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	result := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&vehicles)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated vehicles: %w", result.Error)
	}

	return vehicles, count, nil
}

// FindByOwnerPaginated returns a paginated list of vehicles owned by the given
// user. Pagination applies after the ownership filter.
func (r *VehicleRepository) FindByOwnerPaginated(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*model.Vehicle, int64, error) {
	var vehicles []*model.Vehicle
	var count int64

	scope := r.db.WithContext(ctx).Model(&model.Vehicle{}).Where("owner_id = ?", ownerID)
	if err := scope.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Offset(offset).Limit(limit).Find(&vehicles)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated vehicles: %w", result.Error)
	}

	return vehicles, count, nil
}
