// internal/service/vehicle.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/motorlot/internal/auth"
	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/dangerclosesec/motorlot/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type VehicleService struct {
	repo     repository.VehicleRepositoryIface
	userRepo repository.UserRepositoryIface
	orgRepo  repository.OrganizationRepositoryIface
	validate *validator.Validate
}

func NewVehicleService(
	repo repository.VehicleRepositoryIface,
	userRepo repository.UserRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
) *VehicleService {
	return &VehicleService{
		repo:     repo,
		userRepo: userRepo,
		orgRepo:  orgRepo,
		validate: validator.New(),
	}
}

type VehicleCreateInput struct {
	VIN            string               `json:"vin" validate:"required"`
	FinancingType  *model.FinancingType `json:"financing_type" validate:"omitempty,oneof=cash finance lease"`
	Make           *string              `json:"make"`
	Model          *string              `json:"model"`
	Year           *int                 `json:"year" validate:"omitempty,gte=1900"`
	Color          *string              `json:"color"`
	Mileage        *int                 `json:"mileage" validate:"omitempty,gte=0"`
	Price          *float64             `json:"price" validate:"omitempty,gte=0"`
	MSRP           *float64             `json:"msrp" validate:"omitempty,gte=0"`
	HasLien        *bool                `json:"has_lien"`
	OrganizationID *uuid.UUID           `json:"organization_id"`
}

// VehicleUpdateInput carries only the fields present in the request. Nil
// fields were omitted and must leave the stored values untouched.
type VehicleUpdateInput struct {
	VIN           *string              `json:"vin" validate:"omitempty,min=1"`
	FinancingType *model.FinancingType `json:"financing_type" validate:"omitempty,oneof=cash finance lease"`
	Make          *string              `json:"make"`
	Model         *string              `json:"model"`
	Year          *int                 `json:"year" validate:"omitempty,gte=1900"`
	Color         *string              `json:"color"`
	Mileage       *int                 `json:"mileage" validate:"omitempty,gte=0"`
	Price         *float64             `json:"price" validate:"omitempty,gte=0"`
	MSRP          *float64             `json:"msrp" validate:"omitempty,gte=0"`
	HasLien       *bool                `json:"has_lien"`
}

// List returns vehicles visible to the caller, scoped the same way as
// organizations.
func (s *VehicleService) List(ctx context.Context, caller *model.User, skip, limit int) ([]*model.Vehicle, int64, error) {
	if caller.IsSuperuser {
		return s.repo.FindAllPaginated(ctx, skip, limit)
	}
	return s.repo.FindByOwnerPaginated(ctx, caller.ID, skip, limit)
}

func (s *VehicleService) Get(ctx context.Context, caller *model.User, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.CanManage(caller, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// Create validates and persists a new vehicle owned by the caller. All checks
// run before anything is written:
//  1. the acting user must exist (guards against a stale token identity),
//  2. a supplied organization reference must resolve,
//  3. the VIN must not already be registered.
//
// The VIN unique index catches the remaining race between the pre-check and
// the insert.
func (s *VehicleService) Create(ctx context.Context, caller *model.User, input VehicleCreateInput) (*model.Vehicle, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	owner, err := s.userRepo.FindByEmail(ctx, caller.Email)
	if err != nil {
		return nil, err
	}

	if input.OrganizationID != nil {
		if _, err := s.orgRepo.FindByID(ctx, *input.OrganizationID); err != nil {
			return nil, err
		}
	}

	if _, err := s.repo.FindByVIN(ctx, input.VIN); err == nil {
		return nil, domain.ErrDuplicateVIN
	} else if !errors.Is(err, domain.ErrVehicleNotFound) {
		return nil, err
	}

	vehicle := &model.Vehicle{
		VIN:            input.VIN,
		FinancingType:  input.FinancingType,
		Make:           input.Make,
		Model:          input.Model,
		Year:           input.Year,
		Color:          input.Color,
		Mileage:        input.Mileage,
		Price:          input.Price,
		MSRP:           input.MSRP,
		HasLien:        input.HasLien,
		OwnerID:        owner.ID,
		OrganizationID: input.OrganizationID,
	}

	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, caller *model.User, id uuid.UUID, input VehicleUpdateInput) (*model.Vehicle, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	vehicle, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if input.VIN != nil {
		vehicle.VIN = *input.VIN
	}
	if input.FinancingType != nil {
		vehicle.FinancingType = input.FinancingType
	}
	if input.Make != nil {
		vehicle.Make = input.Make
	}
	if input.Model != nil {
		vehicle.Model = input.Model
	}
	if input.Year != nil {
		vehicle.Year = input.Year
	}
	if input.Color != nil {
		vehicle.Color = input.Color
	}
	if input.Mileage != nil {
		vehicle.Mileage = input.Mileage
	}
	if input.Price != nil {
		vehicle.Price = input.Price
	}
	if input.MSRP != nil {
		vehicle.MSRP = input.MSRP
	}
	if input.HasLien != nil {
		vehicle.HasLien = input.HasLien
	}

	if err := s.repo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
