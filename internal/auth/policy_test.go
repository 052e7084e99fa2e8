package auth_test

import (
	"testing"

	"github.com/agriformation/backoffice/internal/auth"
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	volunteer := &model.Account{Role: model.RoleVolunteer}
	admin := &model.Account{Role: model.RoleAdmin}
	superadmin := &model.Account{Role: model.RoleSuperadmin}

	tests := []struct {
		name    string
		account *model.Account
		allowed []model.Role
		want    error
	}{
		{"anonymous", nil, auth.Staff, domain.ErrUnauthenticated},
		{"volunteer on staff route", volunteer, auth.Staff, domain.ErrForbidden},
		{"admin on staff route", admin, auth.Staff, nil},
		{"superadmin on staff route", superadmin, auth.Staff, nil},
		{"admin on superadmin route", admin, []model.Role{model.RoleSuperadmin}, domain.ErrForbidden},
		{"superadmin does not imply admin", superadmin, []model.Role{model.RoleAdmin}, domain.ErrForbidden},
		{"volunteer on own route", volunteer, []model.Role{model.RoleVolunteer}, nil},
		{"empty allowed set", admin, nil, domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.Authorize(tt.account, tt.allowed...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
