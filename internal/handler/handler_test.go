package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agriformation/backoffice/internal/auth"
	"github.com/agriformation/backoffice/internal/config"
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/handler"
	"github.com/agriformation/backoffice/internal/media"
	"github.com/agriformation/backoffice/internal/mocks"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type tokenTable map[string]*model.Account

func (t tokenTable) Authenticate(_ context.Context, token string) (*model.Account, error) {
	if a, ok := t[token]; ok {
		return a, nil
	}
	return nil, domain.ErrInvalidToken
}

type fixture struct {
	router       http.Handler
	accounts     *mocks.MockAccountRepositoryIface
	applications *mocks.MockApplicationRepositoryIface
	volunteers   *mocks.MockVolunteerRepositoryIface
	calls        *mocks.MockOpportunityRepositoryIface
	galleries    *mocks.MockGalleryRepositoryIface
	auditLogs    *mocks.MockAuditLogRepositoryIface
	host         *mocks.MockHost
}

var (
	superadmin = &model.Account{ID: uuid.New(), FullName: "Root", Email: "root@example.org", Role: model.RoleSuperadmin, IsActive: true}
	admin      = &model.Account{ID: uuid.New(), FullName: "Staff", Email: "staff@example.org", Role: model.RoleAdmin, IsActive: true}
	volunteer  = &model.Account{ID: uuid.New(), FullName: "Helper", Email: "helper@example.org", Role: model.RoleVolunteer, IsActive: true}
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		accounts:     mocks.NewMockAccountRepositoryIface(ctrl),
		applications: mocks.NewMockApplicationRepositoryIface(ctrl),
		volunteers:   mocks.NewMockVolunteerRepositoryIface(ctrl),
		calls:        mocks.NewMockOpportunityRepositoryIface(ctrl),
		galleries:    mocks.NewMockGalleryRepositoryIface(ctrl),
		auditLogs:    mocks.NewMockAuditLogRepositoryIface(ctrl),
		host:         mocks.NewMockHost(ctrl),
	}
	f.auditLogs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)
	auditSvc := service.NewAuditService(f.auditLogs)
	accountSvc := service.NewAccountService(f.accounts, hasher, tokens, auditSvc, &config.Config{})
	applicationSvc := service.NewApplicationService(f.applications, f.accounts, hasher, nil, auditSvc)
	volunteerSvc := service.NewVolunteerService(f.volunteers, f.applications, auditSvc)

	r := chi.NewRouter()
	handler.Mount(r, handler.Handlers{
		Auth:        handler.NewAuthHandler(accountSvc),
		Volunteer:   handler.NewVolunteerHandler(applicationSvc, volunteerSvc),
		Admin:       handler.NewAdminHandler(applicationSvc, volunteerSvc, accountSvc, auditSvc),
		Opportunity: handler.NewOpportunityHandler(service.NewOpportunityService(f.calls, f.host, auditSvc)),
		Gallery:     handler.NewGalleryHandler(service.NewGalleryService(f.galleries, f.host, auditSvc)),
	}, tokenTable{"super": superadmin, "admin": admin, "vol": volunteer})
	f.router = r
	return f
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func (f *fixture) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return f.serve(t, req)
}

func (f *fixture) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestRoleGates(t *testing.T) {
	f := newFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/api/admin/applications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/admin/applications", "vol", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/admin/users", "admin", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/admin/audit-logs", "admin", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/volunteers/profile", "admin", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = f.do(t, http.MethodPost, "/api/auth/register-admin", "admin", map[string]string{})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginFailureIsUniform(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().FindByEmail(gomock.Any(), "ghost@example.org").Return(nil, domain.ErrAccountNotFound)

	rec, env := f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ghost@example.org", "password": "whatever"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid email or password", env.Message)
}

func TestApplicationSubmitValidation(t *testing.T) {
	f := newFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/volunteers/apply", "", map[string]string{
		"fullName": "Short Statement",
		"email":    "short@example.org",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "preferredRole")
	assert.Contains(t, env.Errors, "aboutYourself")
}

func TestDuplicatePendingIsConflict(t *testing.T) {
	f := newFixture(t)
	f.applications.EXPECT().HasPending(gomock.Any(), "dup@example.org").Return(true, nil)

	rec, env := f.do(t, http.MethodPost, "/api/volunteers/apply", "", map[string]string{
		"fullName":      "Dup",
		"email":         "dup@example.org",
		"preferredRole": "Field",
		"aboutYourself": strings.Repeat("x", 60),
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.ErrDuplicatePending.Error(), env.Message)
}

func TestPublicCallApply(t *testing.T) {
	f := newFixture(t)
	call := &model.VolunteerCall{ID: uuid.New(), Status: model.CallOpen, IsPublished: true, Deadline: time.Now().Add(time.Hour)}
	f.calls.EXPECT().FindByID(gomock.Any(), call.ID, false).Return(call, nil).Times(2)
	f.calls.EXPECT().HasApplicant(gomock.Any(), call.ID, volunteer.Email).Return(false, nil)
	f.calls.EXPECT().AddApplication(gomock.Any(), gomock.Any()).Return(nil)
	f.calls.EXPECT().HasApplicant(gomock.Any(), call.ID, "anon@example.org").Return(true, nil)

	rec, env := f.do(t, http.MethodPost, "/api/volunteer-calls/"+call.ID.String()+"/apply", "vol", map[string]string{})
	assert.Equal(t, http.StatusCreated, rec.Code)
	var app model.CallApplication
	require.NoError(t, json.Unmarshal(env.Data, &app))
	assert.Equal(t, volunteer.Email, app.Email)

	rec, _ = f.do(t, http.MethodPost, "/api/volunteer-calls/"+call.ID.String()+"/apply", "", map[string]string{
		"fullName": "Anon",
		"email":    "anon@example.org",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateCallRequiresImage(t *testing.T) {
	f := newFixture(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"title":              "Planting",
		"description":        "Plant seedlings",
		"requirements":       "None",
		"eventDate":          time.Now().Add(48 * time.Hour).Format("2006-01-02"),
		"deadline":           time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"location":           "Jos",
		"numberOfVolunteers": "5",
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/volunteer-calls", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer admin")

	rec, env := f.serve(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.ErrMissingAsset.Error(), env.Message)
}

func TestUploadPhotos(t *testing.T) {
	f := newFixture(t)
	g := &model.Gallery{ID: uuid.New(), Title: "Field day"}

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("photos", "one.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	part, err = mw.CreateFormFile("photos", "two.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("not an image at all"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("caption", "Morning"))
	require.NoError(t, mw.Close())

	f.galleries.EXPECT().FindByID(gomock.Any(), g.ID).Return(g, nil).Times(2)
	f.host.EXPECT().Upload(gomock.Any(), gomock.Any(), "organization-galleries", gomock.Any()).
		Return(&media.Asset{URL: "https://cdn/one.png", PublicID: "organization-galleries/one"}, nil)
	f.galleries.EXPECT().AddPhotos(gomock.Any(), g.ID, gomock.Len(1)).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/galleries/"+g.ID.String()+"/photos", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer admin")

	rec, env := f.serve(t, req)
	require.Equal(t, http.StatusOK, rec.Code, env.Message)

	var result service.AddPhotosResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 1, result.Uploaded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "two.txt", result.Failed[0].Filename)
}

func TestUnknownGalleryIsNotFound(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.galleries.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrGalleryNotFound)

	rec, env := f.do(t, http.MethodGet, "/api/galleries/public/"+id.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.ErrGalleryNotFound.Error(), env.Message)

	rec, _ = f.do(t, http.MethodGet, "/api/galleries/public/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func callForm(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		part, err := mw.CreateFormFile("designImage", "design.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestCreateCallFormConversionErrors(t *testing.T) {
	f := newFixture(t)

	body, contentType := callForm(t, map[string]string{
		"title":              "Planting",
		"eventDate":          "next tuesday",
		"numberOfVolunteers": "five",
		"unknownField":       "ignored",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/volunteer-calls", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer admin")

	rec, env := f.serve(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Equal(t, "must be a date (YYYY-MM-DD) or RFC3339 timestamp", env.Errors["eventDate"])
	assert.Equal(t, "must be a whole number", env.Errors["numberOfVolunteers"])
	assert.NotContains(t, env.Errors, "unknownField")
}

func TestCreateCallBodyTooLarge(t *testing.T) {
	f := newFixture(t)

	body, contentType := callForm(t, map[string]string{"title": "Planting"}, bytes.Repeat([]byte{0}, media.MaxUploadSize+2<<20))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/volunteer-calls", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer admin")

	rec, env := f.serve(t, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, env.Success)
}

func TestUpdateCallFormPatchesOnlySentFields(t *testing.T) {
	f := newFixture(t)
	call := &model.VolunteerCall{
		ID:                 uuid.New(),
		Title:              "Planting",
		Description:        "Plant seedlings",
		Location:           "Jos",
		NumberOfVolunteers: 5,
		Category:           model.CallCategoryFarmWork,
	}
	f.calls.EXPECT().FindByID(gomock.Any(), call.ID, false).Return(call, nil)
	f.calls.EXPECT().Update(gomock.Any(), call).Return(nil)

	body, contentType := callForm(t, map[string]string{
		"numberOfVolunteers": "12",
		"deadline":           "2030-01-02",
		"category":           "",
	}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/volunteer-calls/"+call.ID.String(), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer admin")

	rec, env := f.serve(t, req)
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	assert.Equal(t, 12, call.NumberOfVolunteers)
	assert.Equal(t, time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC), call.Deadline)
	assert.Equal(t, "Planting", call.Title)
	assert.Equal(t, model.CallCategoryFarmWork, call.Category)
}
