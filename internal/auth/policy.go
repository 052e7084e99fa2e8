// internal/auth/policy.go
package auth

import (
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
)

// Authorize checks that account holds one of the allowed roles. Roles are flat:
// superadmin does not imply admin, so a route open to both must list both.
func Authorize(account *model.Account, allowed ...model.Role) error {
	if account == nil {
		return domain.ErrUnauthenticated
	}
	for _, r := range allowed {
		if account.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}

// Staff is the allowed set for routes open to admins and superadmins.
var Staff = []model.Role{model.RoleAdmin, model.RoleSuperadmin}
