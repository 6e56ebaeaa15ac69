package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meridia/identity/internal/domain"
	"github.com/meridia/identity/internal/handler"
	"github.com/meridia/identity/internal/middleware"
	"github.com/meridia/identity/internal/mocks"
	"github.com/meridia/identity/internal/model"
	"github.com/meridia/identity/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeVerifier struct{}

func (fakeVerifier) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeVerifier) Verify(password, encodedHash string) (bool, error) {
	return encodedHash == "hashed:"+password, nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(sub, role, status string) (string, error) { return "token-" + sub, nil }

type handlerFixture struct {
	adminRepo           *mocks.MockOrgAdminRepositoryIface
	practitionerRepo    *mocks.MockPractitionerRepositoryIface
	orgPractitionerRepo *mocks.MockOrgPractitionerRepositoryIface
	orgRepo             *mocks.MockOrganizationRepositoryIface
	h                   *handler.AuthHandler
}

func newHandlerFixture(ctrl *gomock.Controller) *handlerFixture {
	f := &handlerFixture{
		adminRepo:           mocks.NewMockOrgAdminRepositoryIface(ctrl),
		practitionerRepo:    mocks.NewMockPractitionerRepositoryIface(ctrl),
		orgPractitionerRepo: mocks.NewMockOrgPractitionerRepositoryIface(ctrl),
		orgRepo:             mocks.NewMockOrganizationRepositoryIface(ctrl),
	}
	svc := service.NewIdentityService(
		f.adminRepo,
		f.practitionerRepo,
		f.orgPractitionerRepo,
		f.orgRepo,
		fakeVerifier{},
		fakeIssuer{},
		nil,
		nil,
	)
	f.h = handler.NewAuthHandler(svc)
	return f
}

func (f *handlerFixture) expectLookup(email string, admin *model.OrgAdmin, independent *model.Practitioner, affiliated *model.OrgPractitioner) {
	if admin != nil {
		f.adminRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(admin, nil)
	} else {
		f.adminRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, domain.ErrAccountNotFound)
	}
	if independent != nil {
		f.practitionerRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(independent, nil)
	} else {
		f.practitionerRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, domain.ErrAccountNotFound)
	}
	if affiliated != nil {
		f.orgPractitionerRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(affiliated, nil)
	} else {
		f.orgPractitionerRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, domain.ErrAccountNotFound)
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := model.Organization{ID: uuid.New(), Name: "Mercy General", Status: model.OrgActive}

	t.Run("successful login returns identity and token", func(t *testing.T) {
		f := newHandlerFixture(ctrl)
		p := &model.Practitioner{
			ID:               uuid.New(),
			Email:            "doc@x.com",
			PasswordHash:     "hashed:p@ss1",
			Role:             model.RoleDoctor,
			Status:           model.StatusActive,
			AssignedPatients: []model.Patient{{ID: uuid.New()}},
		}
		f.expectLookup("doc@x.com", nil, p, nil)

		rec := postJSON(t, f.h.LoginHandler, service.LoginInput{Email: "doc@x.com", Password: "p@ss1"})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.Equal(t, p.ID, resp.Data.ID)
		assert.Equal(t, "assigned-patients", resp.Data.Route)
		assert.Equal(t, "token-"+p.ID.String(), resp.AccessToken)
		assert.Equal(t, "Login successful", resp.Message)
	})

	t.Run("unknown account and wrong password share one message", func(t *testing.T) {
		f := newHandlerFixture(ctrl)
		f.expectLookup("none@z.com", nil, nil, nil)

		rec := postJSON(t, f.h.LoginHandler, service.LoginInput{Email: "none@z.com", Password: "p@ss1"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		notFound := decodeError(t, rec)

		p := &model.Practitioner{
			ID:               uuid.New(),
			Email:            "doc@x.com",
			PasswordHash:     "hashed:p@ss1",
			Role:             model.RoleDoctor,
			Status:           model.StatusActive,
			AssignedPatients: []model.Patient{{ID: uuid.New()}},
		}
		f.expectLookup("doc@x.com", nil, p, nil)

		rec = postJSON(t, f.h.LoginHandler, service.LoginInput{Email: "doc@x.com", Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		wrongPassword := decodeError(t, rec)

		assert.Equal(t, "Invalid email or password", notFound.Error)
		assert.Equal(t, notFound.Error, wrongPassword.Error)
	})

	t.Run("pending organization", func(t *testing.T) {
		f := newHandlerFixture(ctrl)
		pendingOrg := org
		pendingOrg.Status = model.OrgPending
		admin := &model.OrgAdmin{
			ID:           uuid.New(),
			Email:        "admin@y.com",
			PasswordHash: "hashed:p@ss1",
			Role:         model.RoleOrgAdmin,
			Status:       model.StatusActive,
			Organization: pendingOrg,
		}
		f.expectLookup("admin@y.com", admin, nil, nil)

		rec := postJSON(t, f.h.LoginHandler, service.LoginInput{Email: "admin@y.com", Password: "p@ss1"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Your organization is pending verification", decodeError(t, rec).Error)
	})

	t.Run("suspended organization", func(t *testing.T) {
		f := newHandlerFixture(ctrl)
		suspendedOrg := org
		suspendedOrg.Status = model.OrgSuspended
		admin := &model.OrgAdmin{
			ID:           uuid.New(),
			Email:        "admin@y.com",
			PasswordHash: "hashed:p@ss1",
			Role:         model.RoleOrgAdmin,
			Status:       model.StatusActive,
			Organization: suspendedOrg,
		}
		f.expectLookup("admin@y.com", admin, nil, nil)

		rec := postJSON(t, f.h.LoginHandler, service.LoginInput{Email: "admin@y.com", Password: "p@ss1"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Your organization or account has been suspended", decodeError(t, rec).Error)
	})

	t.Run("no assigned patients", func(t *testing.T) {
		f := newHandlerFixture(ctrl)
		p := &model.Practitioner{
			ID:           uuid.New(),
			Email:        "doc@x.com",
			PasswordHash: "hashed:p@ss1",
			Role:         model.RoleDoctor,
			Status:       model.StatusActive,
		}
		f.expectLookup("doc@x.com", nil, p, nil)

		rec := postJSON(t, f.h.LoginHandler, service.LoginInput{Email: "doc@x.com", Password: "p@ss1"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "No patients were assigned to you", decodeError(t, rec).Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newHandlerFixture(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		f.h.LoginHandler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request payload", decodeError(t, rec).Error)
	})
}

func TestSignupHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("practitioner conflict", func(t *testing.T) {
		f := newHandlerFixture(ctrl)
		f.practitionerRepo.EXPECT().
			FindByEmailOrPracticeNumber(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.Practitioner{}, nil)

		rec := postJSON(t, f.h.PractitionerSignupHandler, service.PractitionerSignupInput{
			Fullname:       "Jane Doe",
			Email:          "jane@clinic.com",
			Password:       "s3cret-pass",
			PracticeNumber: "MP-1001",
			Profession:     "doctor",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Email or practice number already exist.", decodeError(t, rec).Error)
	})

	t.Run("practitioner created", func(t *testing.T) {
		f := newHandlerFixture(ctrl)
		f.practitionerRepo.EXPECT().
			FindByEmailOrPracticeNumber(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrAccountNotFound)
		f.practitionerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		rec := postJSON(t, f.h.PractitionerSignupHandler, service.PractitionerSignupInput{
			Fullname:       "Jane Doe",
			Email:          "jane@clinic.com",
			Password:       "s3cret-pass",
			PracticeNumber: "MP-1001",
			Profession:     "doctor",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("organization conflict", func(t *testing.T) {
		f := newHandlerFixture(ctrl)
		f.orgRepo.EXPECT().
			FindByEmailOrName(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.Organization{}, nil)

		rec := postJSON(t, f.h.OrganizationSignupHandler, service.OrganizationSignupInput{
			OrganizationName: "Mercy General",
			Fullname:         "Ada Admin",
			Email:            "admin@mercy.org",
			Password:         "s3cret-pass",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Organization already exist", decodeError(t, rec).Error)
	})
}

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("missing actor context", func(t *testing.T) {
		f := newHandlerFixture(ctrl)

		rec := postJSON(t, f.h.ChangePasswordHandler, service.ChangePasswordInput{
			CurrentPassword: "old",
			NewPassword:     "brand-new-pass",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newHandlerFixture(ctrl)
		admin := &model.OrgAdmin{
			ID:           uuid.New(),
			PasswordHash: "hashed:right",
			Role:         model.RoleOrgAdmin,
		}
		f.adminRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)

		payload, err := json.Marshal(service.ChangePasswordInput{
			CurrentPassword: "wrong",
			NewPassword:     "brand-new-pass",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/", bytes.NewReader(payload))
		ctx := context.WithValue(req.Context(), middleware.ActorIDKey, admin.ID.String())
		ctx = context.WithValue(ctx, middleware.ActorRoleKey, string(model.RoleOrgAdmin))
		rec := httptest.NewRecorder()
		f.h.ChangePasswordHandler(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Current password is incorrect", decodeError(t, rec).Error)
	})
}
