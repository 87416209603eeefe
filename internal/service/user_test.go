package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/motorlot/internal/auth"
	"github.com/dangerclosesec/motorlot/internal/config"
	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/mocks"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/dangerclosesec/motorlot/internal/repository"
	"github.com/dangerclosesec/motorlot/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newUserService(repo repository.UserRepositoryIface) *service.UserService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret"
	cfg.JWT.ExpiryPeriod = time.Hour
	cfg.JWT.ResetTokenTTL = 30 * time.Minute
	cfg.BaseURL = "http://localhost:8080"

	return service.NewUserService(
		repo,
		auth.NewPasswordHasher(),
		auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod),
		nil,
		cfg,
	)
}

func newUserServiceDB(db *gorm.DB) *service.UserService {
	return newUserService(repository.NewUserRepository(db))
}

func TestUserSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := newUserService(repo)

	gomock.InOrder(
		repo.EXPECT().
			FindByEmail(gomock.Any(), "new@example.com").
			Return(nil, domain.ErrUserNotFound),

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil),
	)

	out, err := svc.Signup(context.Background(), service.SignupInput{
		Email:    "new@example.com",
		Password: "correct_horse_battery",
		FullName: "New User",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.True(t, out.User.IsActive)
	assert.False(t, out.User.IsSuperuser)
	assert.NotEqual(t, "correct_horse_battery", out.User.HashedPassword)
}

func TestUserSignupDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := newUserService(repo)

	repo.EXPECT().
		FindByEmail(gomock.Any(), "taken@example.com").
		Return(&model.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	_, err := svc.Signup(context.Background(), service.SignupInput{
		Email:    "taken@example.com",
		Password: "correct_horse_battery",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserSignupValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newUserService(mocks.NewMockUserRepositoryIface(ctrl))
	ctx := context.Background()

	_, err := svc.Signup(ctx, service.SignupInput{Email: "not-an-email", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Signup(ctx, service.SignupInput{Email: "ok@example.com", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashed, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	testUser := &model.User{
		ID:             uuid.New(),
		Email:          "test@example.com",
		HashedPassword: hashed,
		IsActive:       true,
	}

	t.Run("valid credentials", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := newUserService(repo)

		repo.EXPECT().
			FindByEmail(gomock.Any(), testUser.Email).
			Return(testUser, nil)

		out, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    testUser.Email,
			Password: "correct_password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, testUser.ID, out.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := newUserService(repo)

		repo.EXPECT().
			FindByEmail(gomock.Any(), testUser.Email).
			Return(testUser, nil)

		_, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    testUser.Email,
			Password: "wrong_password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := newUserService(repo)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrUserNotFound)

		_, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever_password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		inactive := &model.User{
			ID:             uuid.New(),
			Email:          "inactive@example.com",
			HashedPassword: hashed,
			IsActive:       false,
		}

		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := newUserService(repo)

		repo.EXPECT().
			FindByEmail(gomock.Any(), inactive.Email).
			Return(inactive, nil)

		_, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    inactive.Email,
			Password: "correct_password",
		})
		assert.ErrorIs(t, err, domain.ErrInactiveUser)
	})
}

func TestUserUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserServiceDB(db)
	ctx := context.Background()

	out, err := svc.Signup(ctx, service.SignupInput{Email: "user@example.com", Password: "original_password"})
	require.NoError(t, err)
	user := out.User

	err = svc.UpdatePassword(ctx, user, service.UpdatePasswordInput{
		CurrentPassword: "not_the_password",
		NewPassword:     "replacement_pw",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	err = svc.UpdatePassword(ctx, user, service.UpdatePasswordInput{
		CurrentPassword: "original_password",
		NewPassword:     "replacement_pw",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, service.LoginInput{Email: "user@example.com", Password: "replacement_pw"})
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, service.LoginInput{Email: "user@example.com", Password: "original_password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserPasswordResetFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newUserServiceDB(db)
	tm := auth.NewTokenManager("test_secret", time.Hour)
	ctx := context.Background()

	out, err := svc.Signup(ctx, service.SignupInput{Email: "user@example.com", Password: "original_password"})
	require.NoError(t, err)

	// Recovery for an unknown address reports not found.
	err = svc.RecoverPassword(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// With no mail provider configured the token is still issued without error.
	require.NoError(t, svc.RecoverPassword(ctx, "user@example.com"))

	resetToken, err := tm.GeneratePasswordReset(out.User.ID.String(), out.User.Email, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, service.ResetPasswordInput{
		Token:       resetToken,
		NewPassword: "recovered_pw",
	}))

	_, err = svc.Authenticate(ctx, service.LoginInput{Email: "user@example.com", Password: "recovered_pw"})
	assert.NoError(t, err)
}

func TestUserResetPasswordRejectsAccessToken(t *testing.T) {
	db := newTestDB(t)
	svc := newUserServiceDB(db)
	ctx := context.Background()

	out, err := svc.Signup(ctx, service.SignupInput{Email: "user@example.com", Password: "original_password"})
	require.NoError(t, err)

	// The login token is not a reset credential.
	err = svc.ResetPassword(ctx, service.ResetPasswordInput{
		Token:       out.Token,
		NewPassword: "recovered_pw",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestUserAdminRequiresSuperuser(t *testing.T) {
	db := newTestDB(t)
	svc := newUserServiceDB(db)
	ctx := context.Background()

	regular := seedUser(t, db, "regular@example.com", false)
	admin := seedUser(t, db, "admin@example.com", true)

	_, _, err := svc.List(ctx, regular, 0, 100)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = svc.CreateUser(ctx, regular, service.UserCreateInput{Email: "x@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = svc.DeleteUser(ctx, regular, admin.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, count, err := svc.List(ctx, admin, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestUserAdminLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newUserServiceDB(db)
	ctx := context.Background()

	admin := seedUser(t, db, "admin@example.com", true)

	created, err := svc.CreateUser(ctx, admin, service.UserCreateInput{
		Email:    "staff@example.com",
		Password: "longenough",
		FullName: "Staff Member",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	got, err := svc.GetUser(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "staff@example.com", got.Email)

	// Sparse admin update: deactivate without touching anything else.
	updated, err := svc.UpdateUser(ctx, admin, created.ID, service.UserAdminUpdateInput{IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Staff Member", updated.FullName)

	require.NoError(t, svc.DeleteUser(ctx, admin, created.ID))

	_, err = svc.GetUser(ctx, admin, created.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = svc.DeleteUser(ctx, admin, created.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUpdateMe(t *testing.T) {
	db := newTestDB(t)
	svc := newUserServiceDB(db)
	ctx := context.Background()

	out, err := svc.Signup(ctx, service.SignupInput{Email: "user@example.com", Password: "original_password", FullName: "Before"})
	require.NoError(t, err)

	updated, err := svc.UpdateMe(ctx, out.User, service.UserSelfUpdateInput{FullName: strPtr("After")})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.FullName)
	assert.Equal(t, "user@example.com", updated.Email)
}
