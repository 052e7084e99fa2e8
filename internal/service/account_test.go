package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/agriformation/backoffice/internal/audit"
	"github.com/agriformation/backoffice/internal/auth"
	"github.com/agriformation/backoffice/internal/config"
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/mocks"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAccountService(t *testing.T, repo *mocks.MockAccountRepositoryIface, logger audit.Logger) *service.AccountService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Superadmin.Email = "Root@Example.org"
	cfg.Superadmin.Password = "bootstrap-secret"
	cfg.Superadmin.Name = "Root"
	return service.NewAccountService(repo, auth.NewPasswordHasher(), auth.NewTokenManager("test_secret", time.Hour), logger, cfg)
}

func TestAccountLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	account := &model.Account{
		ID:           uuid.New(),
		FullName:     "Ada Obi",
		Email:        "ada@example.com",
		PasswordHash: hash,
		Role:         model.RoleVolunteer,
		IsActive:     true,
	}

	t.Run("successful login", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		gomock.InOrder(
			repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(account, nil),
			repo.EXPECT().TouchLastLogin(gomock.Any(), account.ID, gomock.Any()).Return(nil),
		)

		svc := newAccountService(t, repo, nil)
		out, err := svc.Login(context.Background(), service.LoginInput{Email: "  ADA@example.com ", Password: "correct_password"})

		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, account.ID, out.User.ID)
		assert.Equal(t, model.RoleVolunteer, out.User.Role)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(account, nil)
		repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrAccountNotFound)

		svc := newAccountService(t, repo, nil)
		_, wrongPassword := svc.Login(context.Background(), service.LoginInput{Email: "ada@example.com", Password: "nope"})
		_, unknownEmail := svc.Login(context.Background(), service.LoginInput{Email: "nobody@example.com", Password: "nope"})

		assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})

	t.Run("inactive account is rejected after password check", func(t *testing.T) {
		inactive := *account
		inactive.IsActive = false
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&inactive, nil).Times(2)

		svc := newAccountService(t, repo, nil)
		_, err := svc.Login(context.Background(), service.LoginInput{Email: "ada@example.com", Password: "correct_password"})
		assert.ErrorIs(t, err, domain.ErrAccountDeactivated)

		_, err = svc.Login(context.Background(), service.LoginInput{Email: "ada@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("last login failure does not block login", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(account, nil)
		repo.EXPECT().TouchLastLogin(gomock.Any(), account.ID, gomock.Any()).Return(assert.AnError)

		svc := newAccountService(t, repo, nil)
		out, err := svc.Login(context.Background(), service.LoginInput{Email: "ada@example.com", Password: "correct_password"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
	})
}

func TestAccountRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	superadmin := &model.Account{ID: uuid.New(), Role: model.RoleSuperadmin, IsActive: true}
	admin := &model.Account{ID: uuid.New(), Role: model.RoleAdmin, IsActive: true}

	t.Run("self registration returns a token", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		gomock.InOrder(
			repo.EXPECT().FindByEmail(gomock.Any(), "new@example.com").Return(nil, domain.ErrAccountNotFound),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *model.Account) error {
				assert.Equal(t, model.RoleVolunteer, a.Role)
				assert.NotEqual(t, "password123", a.PasswordHash)
				a.ID = uuid.New()
				return nil
			}),
		)

		svc := newAccountService(t, repo, nil)
		out, err := svc.Register(context.Background(), service.RegisterInput{
			FullName: "New Person",
			Email:    "New@Example.com",
			Password: "password123",
		}, nil)

		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, "new@example.com", out.User.Email)
	})

	t.Run("elevated roles need a superadmin", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		svc := newAccountService(t, repo, nil)

		input := service.RegisterInput{FullName: "Staff", Email: "staff@example.com", Password: "password123", Role: model.RoleAdmin}
		_, err := svc.Register(context.Background(), input, nil)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		_, err = svc.Register(context.Background(), input, admin)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("superadmin creates an admin without a token", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		logger := mocks.NewMockLogger(ctrl)
		gomock.InOrder(
			repo.EXPECT().FindByEmail(gomock.Any(), "staff@example.com").Return(nil, domain.ErrAccountNotFound),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			logger.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e audit.Event) {
				assert.Equal(t, model.ActionAccountCreateAdmin, e.Action)
				assert.Equal(t, superadmin, e.Actor)
			}),
		)

		svc := newAccountService(t, repo, logger)
		out, err := svc.CreateAdmin(context.Background(), service.CreateAdminInput{
			FullName: "Staff",
			Email:    "staff@example.com",
			Password: "password123",
		}, superadmin)

		require.NoError(t, err)
		assert.Empty(t, out.Token)
		assert.Equal(t, model.RoleAdmin, out.User.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").Return(&model.Account{ID: uuid.New()}, nil)

		svc := newAccountService(t, repo, nil)
		_, err := svc.Register(context.Background(), service.RegisterInput{
			FullName: "Someone",
			Email:    "taken@example.com",
			Password: "password123",
		}, nil)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("validation errors name the fields", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		svc := newAccountService(t, repo, nil)

		_, err := svc.Register(context.Background(), service.RegisterInput{Email: "not-an-email", Password: "short"}, nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "fullName")
		assert.Contains(t, verr.Fields, "email")
		assert.Contains(t, verr.Fields, "password")
	})
}

func TestEnsureSuperadmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepositoryIface(ctrl)
	gomock.InOrder(
		repo.EXPECT().ExistsWithRole(gomock.Any(), model.RoleSuperadmin).Return(false, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *model.Account) error {
			assert.Equal(t, model.RoleSuperadmin, a.Role)
			assert.Equal(t, "root@example.org", a.Email)
			return nil
		}),
		repo.EXPECT().ExistsWithRole(gomock.Any(), model.RoleSuperadmin).Return(true, nil),
	)

	svc := newAccountService(t, repo, nil)

	created, err := svc.EnsureSuperadmin(context.Background())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureSuperadmin(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
}

func TestAccountAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := auth.NewTokenManager("test_secret", time.Hour)
	account := &model.Account{ID: uuid.New(), Email: "ada@example.com", Role: model.RoleAdmin, IsActive: true}
	token, err := tokens.Generate(account.ID, account.Email)
	require.NoError(t, err)

	t.Run("role comes from the store", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), account.ID).Return(account, nil)

		svc := newAccountService(t, repo, nil)
		got, err := svc.Authenticate(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, got.Role)
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive := *account
		inactive.IsActive = false
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), account.ID).Return(&inactive, nil)

		svc := newAccountService(t, repo, nil)
		_, err := svc.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrAccountDeactivated)
	})

	t.Run("malformed token", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		svc := newAccountService(t, repo, nil)
		_, err := svc.Authenticate(context.Background(), "garbage")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestAccountRoleAndActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := &model.Account{ID: uuid.New(), Role: model.RoleSuperadmin}
	target := &model.Account{ID: uuid.New(), Role: model.RoleVolunteer, IsActive: true}

	t.Run("superadmin is never assignable", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		svc := newAccountService(t, repo, nil)
		_, err := svc.UpdateRole(context.Background(), target.ID, model.RoleSuperadmin, actor)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cannot change own role or deactivate self", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		svc := newAccountService(t, repo, nil)
		_, err := svc.UpdateRole(context.Background(), actor.ID, model.RoleAdmin, actor)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = svc.ToggleActive(context.Background(), actor.ID, actor)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("promote and toggle", func(t *testing.T) {
		repo := mocks.NewMockAccountRepositoryIface(ctrl)
		logger := mocks.NewMockLogger(ctrl)
		acc := *target
		repo.EXPECT().FindByID(gomock.Any(), target.ID).Return(&acc, nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), &acc).Return(nil).Times(2)
		logger.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2)

		svc := newAccountService(t, repo, logger)
		got, err := svc.UpdateRole(context.Background(), target.ID, model.RoleAdmin, actor)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, got.Role)

		got, err = svc.ToggleActive(context.Background(), target.ID, actor)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})
}
