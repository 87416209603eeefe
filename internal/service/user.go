// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/motorlot/internal/auth"
	"github.com/dangerclosesec/motorlot/internal/config"
	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/email"
	"github.com/dangerclosesec/motorlot/internal/email/mailer"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/dangerclosesec/motorlot/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailService   *email.Service
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService *email.Service,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailService:   emailService,
		config:         config,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup handles open registration.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:          input.Email,
		HashedPassword: hashed,
		FullName:       input.FullName,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{User: user, Token: token}, nil
}

// Authenticate verifies credentials and returns a fresh access token.
func (s *UserService) Authenticate(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.HashedPassword)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// UserSelfUpdateInput carries only the fields present in the request.
type UserSelfUpdateInput struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name"`
}

// UpdateMe applies a sparse profile update for the caller.
func (s *UserService) UpdateMe(ctx context.Context, caller *model.User, input UserSelfUpdateInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if input.Email != nil {
		caller.Email = *input.Email
	}
	if input.FullName != nil {
		caller.FullName = *input.FullName
	}

	if err := s.repo.Update(ctx, caller); err != nil {
		return nil, err
	}

	return caller, nil
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UpdatePassword verifies the current credential and stores a new hash.
func (s *UserService) UpdatePassword(ctx context.Context, caller *model.User, input UpdatePasswordInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	verified, err := s.passwordHasher.Verify(input.CurrentPassword, caller.HashedPassword)
	if err != nil || !verified {
		return domain.ErrInvalidPassword
	}

	hashed, err := s.passwordHasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	caller.HashedPassword = hashed
	if err := s.repo.Update(ctx, caller); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

// RecoverPassword issues a reset token for the account and mails it out.
func (s *UserService) RecoverPassword(ctx context.Context, emailAddr string) error {
	user, err := s.repo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	token, err := s.tokenManager.GeneratePasswordReset(user.ID.String(), user.Email, s.config.JWT.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("generating reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.config.BaseURL, token)

	if s.emailService != nil {
		if err := mailer.SendPasswordResetEmail(s.emailService, user.Email, user.FullName, resetLink); err != nil {
			return fmt.Errorf("sending reset email: %w", err)
		}
	}

	return nil
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ResetPassword validates a recovery token and stores a new credential hash.
func (s *UserService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	claims, err := s.tokenManager.ValidateForPurpose(input.Token, auth.PurposePasswordReset)
	if err != nil {
		return domain.ErrInvalidResetToken
	}

	user, err := s.repo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return err
	}

	if !user.IsActive {
		return domain.ErrInactiveUser
	}

	hashed, err := s.passwordHasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user.HashedPassword = hashed
	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

// ---- superuser-only user administration ----

type UserCreateInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name"`
	IsActive    *bool  `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserAdminUpdateInput carries only the fields present in the request.
type UserAdminUpdateInput struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
	FullName    *string `json:"full_name"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

func requireSuperuser(caller *model.User) error {
	if !caller.IsSuperuser {
		return domain.ErrPermissionDenied
	}
	return nil
}

func (s *UserService) List(ctx context.Context, caller *model.User, skip, limit int) ([]*model.User, int64, error) {
	if err := requireSuperuser(caller); err != nil {
		return nil, 0, err
	}
	return s.repo.FindAllPaginated(ctx, skip, limit)
}

func (s *UserService) CreateUser(ctx context.Context, caller *model.User, input UserCreateInput) (*model.User, error) {
	if err := requireSuperuser(caller); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	user := &model.User{
		Email:          input.Email,
		HashedPassword: hashed,
		FullName:       input.FullName,
		IsActive:       active,
		IsSuperuser:    input.IsSuperuser,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, caller *model.User, id uuid.UUID) (*model.User, error) {
	if err := requireSuperuser(caller); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, caller *model.User, id uuid.UUID, input UserAdminUpdateInput) (*model.User, error) {
	if err := requireSuperuser(caller); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsSuperuser != nil {
		user.IsSuperuser = *input.IsSuperuser
	}
	if input.Password != nil {
		hashed, err := s.passwordHasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.HashedPassword = hashed
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, caller *model.User, id uuid.UUID) error {
	if err := requireSuperuser(caller); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
