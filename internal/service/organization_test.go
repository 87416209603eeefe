package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/repository"
	"github.com/dangerclosesec/motorlot/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrganizationService(repository.NewOrganizationRepository(db))
	owner := seedUser(t, db, "owner@example.com", false)

	org, err := svc.Create(context.Background(), owner, service.OrganizationCreateInput{Name: "Lakeside Motors"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, org.OwnerID)

	got, err := svc.Get(context.Background(), owner, org.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lakeside Motors", got.Name)
}

func TestOrganizationCreateRequiresName(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrganizationService(repository.NewOrganizationRepository(db))
	owner := seedUser(t, db, "owner@example.com", false)

	_, err := svc.Create(context.Background(), owner, service.OrganizationCreateInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrganizationAccessControl(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrganizationService(repository.NewOrganizationRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", false)
	stranger := seedUser(t, db, "stranger@example.com", false)
	superuser := seedUser(t, db, "admin@example.com", true)

	org, err := svc.Create(ctx, owner, service.OrganizationCreateInput{Name: "Lakeside Motors"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, stranger, org.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = svc.Update(ctx, stranger, org.ID, service.OrganizationUpdateInput{Name: strPtr("Hijacked")})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = svc.Delete(ctx, stranger, org.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	// Superusers bypass the ownership check entirely.
	got, err := svc.Get(ctx, superuser, org.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, got.ID)
}

func TestOrganizationListScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrganizationService(repository.NewOrganizationRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com", false)
	bob := seedUser(t, db, "bob@example.com", false)
	superuser := seedUser(t, db, "admin@example.com", true)

	for _, name := range []string{"Alice One", "Alice Two"} {
		_, err := svc.Create(ctx, alice, service.OrganizationCreateInput{Name: name})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, bob, service.OrganizationCreateInput{Name: "Bob One"})
	require.NoError(t, err)

	orgs, count, err := svc.List(ctx, alice, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	for _, org := range orgs {
		assert.Equal(t, alice.ID, org.OwnerID)
	}

	_, count, err = svc.List(ctx, superuser, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	// Pagination applies after the ownership filter, so the total count is
	// unaffected by the window size.
	orgs, count, err = svc.List(ctx, alice, 0, 1)
	require.NoError(t, err)
	assert.Len(t, orgs, 1)
	assert.EqualValues(t, 2, count)
}

func TestOrganizationSparseUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrganizationService(repository.NewOrganizationRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", false)
	org, err := svc.Create(ctx, owner, service.OrganizationCreateInput{Name: "Before"})
	require.NoError(t, err)

	// An empty update body changes nothing.
	got, err := svc.Update(ctx, owner, org.ID, service.OrganizationUpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, "Before", got.Name)

	got, err = svc.Update(ctx, owner, org.ID, service.OrganizationUpdateInput{Name: strPtr("After")})
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
}

func TestOrganizationDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrganizationService(repository.NewOrganizationRepository(db))
	owner := seedUser(t, db, "owner@example.com", false)

	err := svc.Delete(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
}

func TestOrganizationDeleteRemovesContacts(t *testing.T) {
	db := newTestDB(t)
	orgRepo := repository.NewOrganizationRepository(db)
	svc := service.NewOrganizationService(orgRepo)
	contacts := service.NewContactService(repository.NewContactRepository(db), orgRepo)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", false)
	org, err := svc.Create(ctx, owner, service.OrganizationCreateInput{Name: "Lakeside Motors"})
	require.NoError(t, err)

	_, err = contacts.AddOrganizationEmail(ctx, owner, org.ID, service.EmailCreateInput{Address: "sales@lakeside.example"})
	require.NoError(t, err)
	_, err = contacts.AddOrganizationPhone(ctx, owner, org.ID, service.PhoneCreateInput{Number: "+15555550100", PhoneType: "mobile"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, org.ID))

	var emailCount, phoneCount int64
	require.NoError(t, db.Table("emails").Where("organization_id = ?", org.ID).Count(&emailCount).Error)
	require.NoError(t, db.Table("phones").Where("organization_id = ?", org.ID).Count(&phoneCount).Error)
	assert.Zero(t, emailCount)
	assert.Zero(t, phoneCount)
}
