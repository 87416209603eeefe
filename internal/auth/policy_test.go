package auth_test

import (
	"testing"

	"github.com/dangerclosesec/motorlot/internal/auth"
	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanManage(t *testing.T) {
	owner := &model.User{ID: uuid.New()}
	stranger := &model.User{ID: uuid.New()}
	superuser := &model.User{ID: uuid.New(), IsSuperuser: true}

	org := &model.Organization{ID: uuid.New(), OwnerID: owner.ID}

	assert.NoError(t, auth.CanManage(owner, org))
	assert.NoError(t, auth.CanManage(superuser, org))
	assert.ErrorIs(t, auth.CanManage(stranger, org), domain.ErrPermissionDenied)
}

func TestCanManageVehicle(t *testing.T) {
	owner := &model.User{ID: uuid.New()}
	stranger := &model.User{ID: uuid.New()}

	vehicle := &model.Vehicle{ID: uuid.New(), VIN: "1HGCM82633A004352", OwnerID: owner.ID}

	assert.NoError(t, auth.CanManage(owner, vehicle))
	assert.ErrorIs(t, auth.CanManage(stranger, vehicle), domain.ErrPermissionDenied)
}
