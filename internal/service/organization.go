// internal/service/organization.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/motorlot/internal/auth"
	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/dangerclosesec/motorlot/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrganizationService struct {
	repo     repository.OrganizationRepositoryIface
	validate *validator.Validate
}

func NewOrganizationService(repo repository.OrganizationRepositoryIface) *OrganizationService {
	return &OrganizationService{
		repo:     repo,
		validate: validator.New(),
	}
}

type OrganizationCreateInput struct {
	Name string `json:"name" validate:"required"`
}

// OrganizationUpdateInput carries only the fields present in the request.
// A nil field was omitted and must leave the stored value untouched.
type OrganizationUpdateInput struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// List returns organizations visible to the caller. Superusers see every
// organization; everyone else sees only their own. Pagination applies after
// the ownership filter.
func (s *OrganizationService) List(ctx context.Context, caller *model.User, skip, limit int) ([]*model.Organization, int64, error) {
	if caller.IsSuperuser {
		return s.repo.FindAllPaginated(ctx, skip, limit)
	}
	return s.repo.FindByOwnerPaginated(ctx, caller.ID, skip, limit)
}

func (s *OrganizationService) Get(ctx context.Context, caller *model.User, id uuid.UUID) (*model.Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.CanManage(caller, org); err != nil {
		return nil, err
	}

	return org, nil
}

// Create persists a new organization owned by the caller. Any owner supplied
// by the client is ignored.
func (s *OrganizationService) Create(ctx context.Context, caller *model.User, input OrganizationCreateInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	org := &model.Organization{
		Name:    input.Name,
		OwnerID: caller.ID,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	return org, nil
}

func (s *OrganizationService) Update(ctx context.Context, caller *model.User, id uuid.UUID, input OrganizationUpdateInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	org, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		org.Name = *input.Name
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	return org, nil
}

func (s *OrganizationService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
