// internal/auth/policy.go
package auth

import (
	"github.com/dangerclosesec/motorlot/internal/domain"
	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/google/uuid"
)

// Ownable is any resource that records the user it belongs to.
type Ownable interface {
	Owner() uuid.UUID
}

// CanManage is the single access rule for owned resources: superusers may do
// anything, everyone else only touches what they own. Every resource service
// calls this for get/update/delete instead of re-implementing the check.
func CanManage(caller *model.User, res Ownable) error {
	if caller.IsSuperuser {
		return nil
	}
	if res.Owner() == caller.ID {
		return nil
	}
	return domain.ErrPermissionDenied
}
