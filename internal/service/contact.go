// internal/service/contact.go
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

// ContactService manages email and phone records attached to organizations.
// Access is gated by the same ownership policy as the organization itself.
type ContactService struct {
	repo     repository.ContactRepositoryIface
	orgRepo  repository.OrganizationRepositoryIface
	validate *validator.Validate
}

func NewContactService(repo repository.ContactRepositoryIface, orgRepo repository.OrganizationRepositoryIface) *ContactService {
	return &ContactService{
		repo:     repo,
		orgRepo:  orgRepo,
		validate: validator.New(),
	}
}

type EmailCreateInput struct {
	Address   string `json:"email_address" validate:"required,email"`
	IsPrimary bool   `json:"is_primary"`
}

type PhoneCreateInput struct {
	Number    string          `json:"number" validate:"required,e164"`
	PhoneType model.PhoneType `json:"phone_type" validate:"required,oneof=mobile home work"`
	IsPrimary bool            `json:"is_primary"`
}

func (s *ContactService) resolveOrg(ctx context.Context, caller *model.User, orgID uuid.UUID) (*model.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanManage(caller, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *ContactService) AddOrganizationEmail(ctx context.Context, caller *model.User, orgID uuid.UUID, input EmailCreateInput) (*model.Email, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	org, err := s.resolveOrg(ctx, caller, orgID)
	if err != nil {
		return nil, err
	}

	email := &model.Email{
		Address:        input.Address,
		IsPrimary:      input.IsPrimary,
		OrganizationID: &org.ID,
	}

	if err := s.repo.CreateEmail(ctx, email); err != nil {
		return nil, err
	}

	return email, nil
}

func (s *ContactService) AddOrganizationPhone(ctx context.Context, caller *model.User, orgID uuid.UUID, input PhoneCreateInput) (*model.Phone, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	org, err := s.resolveOrg(ctx, caller, orgID)
	if err != nil {
		return nil, err
	}

	phone := &model.Phone{
		Number:         input.Number,
		PhoneType:      input.PhoneType,
		IsPrimary:      input.IsPrimary,
		OrganizationID: &org.ID,
	}

	if err := s.repo.CreatePhone(ctx, phone); err != nil {
		return nil, err
	}

	return phone, nil
}

func (s *ContactService) ListOrganizationEmails(ctx context.Context, caller *model.User, orgID uuid.UUID) ([]model.Email, error) {
	if _, err := s.resolveOrg(ctx, caller, orgID); err != nil {
		return nil, err
	}
	return s.repo.FindEmailsByOrganization(ctx, orgID)
}

func (s *ContactService) ListOrganizationPhones(ctx context.Context, caller *model.User, orgID uuid.UUID) ([]model.Phone, error) {
	if _, err := s.resolveOrg(ctx, caller, orgID); err != nil {
		return nil, err
	}
	return s.repo.FindPhonesByOrganization(ctx, orgID)
}
