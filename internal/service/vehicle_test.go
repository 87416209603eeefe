package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/dangerclosesec/motorlot/internal/repository"
	"github.com/dangerclosesec/motorlot/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVehicleService(db *gorm.DB) *service.VehicleService {
	return service.NewVehicleService(
		repository.NewVehicleRepository(db),
		repository.NewUserRepository(db),
		repository.NewOrganizationRepository(db),
	)
}

func TestVehicleCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	owner := seedUser(t, db, "dealer@example.com", false)

	financing := model.FinancingCash
	vehicle, err := svc.Create(context.Background(), owner, service.VehicleCreateInput{
		VIN:           "1HGCM82633A004352",
		FinancingType: &financing,
		Make:          strPtr("Honda"),
		Model:         strPtr("Accord"),
		Year:          intPtr(2003),
		Price:         floatPtr(4250),
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, vehicle.OwnerID)
	assert.NotEqual(t, uuid.Nil, vehicle.ID)
}

func TestVehicleCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	owner := seedUser(t, db, "dealer@example.com", false)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner, service.VehicleCreateInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := model.FinancingType("barter")
	_, err = svc.Create(ctx, owner, service.VehicleCreateInput{VIN: "5YJSA1E26HF000337", FinancingType: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, owner, service.VehicleCreateInput{VIN: "5YJSA1E26HF000337", Mileage: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVehicleCreateDuplicateVIN(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com", false)
	bob := seedUser(t, db, "bob@example.com", false)

	_, err := svc.Create(ctx, alice, service.VehicleCreateInput{VIN: "1HGCM82633A004352"})
	require.NoError(t, err)

	// The VIN is unique across all owners, not per owner.
	_, err = svc.Create(ctx, bob, service.VehicleCreateInput{VIN: "1HGCM82633A004352"})
	assert.ErrorIs(t, err, domain.ErrDuplicateVIN)

	var count int64
	require.NoError(t, db.Table("vehicles").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestVehicleCreateDanglingOrganization(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	owner := seedUser(t, db, "dealer@example.com", false)

	_, err := svc.Create(context.Background(), owner, service.VehicleCreateInput{
		VIN:            "1HGCM82633A004352",
		OrganizationID: uuidPtr(uuid.New()),
	})
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)

	// The failed reference check must not leave a partial row behind.
	var count int64
	require.NoError(t, db.Table("vehicles").Count(&count).Error)
	assert.Zero(t, count)
}

func TestVehicleCreateWithOrganization(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	orgSvc := service.NewOrganizationService(repository.NewOrganizationRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "dealer@example.com", false)
	org, err := orgSvc.Create(ctx, owner, service.OrganizationCreateInput{Name: "Lakeside Motors"})
	require.NoError(t, err)

	vehicle, err := svc.Create(ctx, owner, service.VehicleCreateInput{
		VIN:            "1HGCM82633A004352",
		OrganizationID: &org.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, vehicle.OrganizationID)
	assert.Equal(t, org.ID, *vehicle.OrganizationID)
}

func TestVehicleSparseUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "dealer@example.com", false)
	vehicle, err := svc.Create(ctx, owner, service.VehicleCreateInput{
		VIN:   "1HGCM82633A004352",
		Color: strPtr("silver"),
		Price: floatPtr(4250),
	})
	require.NoError(t, err)

	// Updating only the color leaves the price untouched.
	got, err := svc.Update(ctx, owner, vehicle.ID, service.VehicleUpdateInput{Color: strPtr("black")})
	require.NoError(t, err)
	require.NotNil(t, got.Color)
	assert.Equal(t, "black", *got.Color)
	require.NotNil(t, got.Price)
	assert.Equal(t, 4250.0, *got.Price)

	reloaded, err := svc.Get(ctx, owner, vehicle.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Price)
	assert.Equal(t, 4250.0, *reloaded.Price)
}

func TestVehicleUpdateToDuplicateVIN(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "dealer@example.com", false)
	_, err := svc.Create(ctx, owner, service.VehicleCreateInput{VIN: "1HGCM82633A004352"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, owner, service.VehicleCreateInput{VIN: "5YJSA1E26HF000337"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, owner, second.ID, service.VehicleUpdateInput{VIN: strPtr("1HGCM82633A004352")})
	assert.ErrorIs(t, err, domain.ErrDuplicateVIN)
}

func TestVehicleAccessControl(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "dealer@example.com", false)
	stranger := seedUser(t, db, "stranger@example.com", false)
	superuser := seedUser(t, db, "admin@example.com", true)

	vehicle, err := svc.Create(ctx, owner, service.VehicleCreateInput{VIN: "1HGCM82633A004352"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, stranger, vehicle.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = svc.Update(ctx, stranger, vehicle.ID, service.VehicleUpdateInput{Color: strPtr("red")})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = svc.Delete(ctx, stranger, vehicle.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	require.NoError(t, svc.Delete(ctx, superuser, vehicle.ID))
}

func TestVehicleListScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com", false)
	bob := seedUser(t, db, "bob@example.com", false)
	superuser := seedUser(t, db, "admin@example.com", true)

	_, err := svc.Create(ctx, alice, service.VehicleCreateInput{VIN: "1HGCM82633A004352"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, service.VehicleCreateInput{VIN: "5YJSA1E26HF000337"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, service.VehicleCreateInput{VIN: "2T1BURHE5JC970152"})
	require.NoError(t, err)

	vehicles, count, err := svc.List(ctx, alice, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	for _, v := range vehicles {
		assert.Equal(t, alice.ID, v.OwnerID)
	}

	_, count, err = svc.List(ctx, superuser, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestVehicleDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newVehicleService(db)
	owner := seedUser(t, db, "dealer@example.com", false)

	err := svc.Delete(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}
