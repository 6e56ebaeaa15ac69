package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/meridia/identity/internal/domain"
	"github.com/meridia/identity/internal/mocks"
	"github.com/meridia/identity/internal/model"
	"github.com/meridia/identity/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubVerifier treats "hashed:<password>" as the stored digest for
// <password> and counts comparisons, so tests can prove that gated
// branches never reach the password check.
type stubVerifier struct {
	invocations int
}

func (v *stubVerifier) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (v *stubVerifier) Verify(password, encodedHash string) (bool, error) {
	v.invocations++
	return encodedHash == "hashed:"+password, nil
}

type stubIssuer struct {
	err        error
	lastRole   string
	lastStatus string
}

func (i *stubIssuer) Issue(sub, role, status string) (string, error) {
	if i.err != nil {
		return "", i.err
	}
	i.lastRole = role
	i.lastStatus = status
	return "token-" + sub, nil
}

type loginFixture struct {
	adminRepo           *mocks.MockOrgAdminRepositoryIface
	practitionerRepo    *mocks.MockPractitionerRepositoryIface
	orgPractitionerRepo *mocks.MockOrgPractitionerRepositoryIface
	orgRepo             *mocks.MockOrganizationRepositoryIface
	verifier            *stubVerifier
	issuer              *stubIssuer
	svc                 *service.IdentityService
}

func newLoginFixture(ctrl *gomock.Controller) *loginFixture {
	f := &loginFixture{
		adminRepo:           mocks.NewMockOrgAdminRepositoryIface(ctrl),
		practitionerRepo:    mocks.NewMockPractitionerRepositoryIface(ctrl),
		orgPractitionerRepo: mocks.NewMockOrgPractitionerRepositoryIface(ctrl),
		orgRepo:             mocks.NewMockOrganizationRepositoryIface(ctrl),
		verifier:            &stubVerifier{},
		issuer:              &stubIssuer{},
	}
	f.svc = service.NewIdentityService(
		f.adminRepo,
		f.practitionerRepo,
		f.orgPractitionerRepo,
		f.orgRepo,
		f.verifier,
		f.issuer,
		nil,
		nil,
	)
	return f
}

// expectLookup arms all three collection lookups for one attempt. A nil
// argument means that collection reports no match.
func (f *loginFixture) expectLookup(email string, admin *model.OrgAdmin, independent *model.Practitioner, affiliated *model.OrgPractitioner) {
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

func activeOrg() model.Organization {
	return model.Organization{ID: uuid.New(), Name: "Mercy General", Status: model.OrgActive}
}

func adminAccount(email string, org model.Organization) *model.OrgAdmin {
	return &model.OrgAdmin{
		ID:             uuid.New(),
		Email:          email,
		Fullname:       "Ada Admin",
		PasswordHash:   "hashed:p@ss1",
		Role:           model.RoleOrgAdmin,
		Status:         model.StatusActive,
		OrganizationID: org.ID,
		Organization:   org,
	}
}

func independentAccount(email string, patients int) *model.Practitioner {
	p := &model.Practitioner{
		ID:           uuid.New(),
		Email:        email,
		Fullname:     "Ivy Indep",
		PasswordHash: "hashed:p@ss1",
		Role:         model.RoleDoctor,
		Status:       model.StatusActive,
	}
	for i := 0; i < patients; i++ {
		p.AssignedPatients = append(p.AssignedPatients, model.Patient{ID: uuid.New()})
	}
	return p
}

func affiliatedAccount(email string, org model.Organization, patients int) *model.OrgPractitioner {
	p := &model.OrgPractitioner{
		ID:             uuid.New(),
		Email:          email,
		Fullname:       "Olu Org",
		PasswordHash:   "hashed:p@ss1",
		Role:           model.RoleRadiologist,
		Status:         model.StatusActive,
		OrganizationID: org.ID,
		Organization:   org,
	}
	for i := 0; i < patients; i++ {
		p.AssignedPatients = append(p.AssignedPatients, model.Patient{ID: uuid.New()})
	}
	return p
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("rejects invalid input before any lookup", func(t *testing.T) {
		f := newLoginFixture(ctrl)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "not-an-email", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, f.verifier.invocations)
	})

	t.Run("unknown email in every collection", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		f.expectLookup("none@z.com", nil, nil, nil)

		result, err := f.svc.Login(ctx, service.LoginInput{Email: "none@z.com", Password: "whatever"})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		assert.Zero(t, f.verifier.invocations, "no password comparison on a miss")
	})

	t.Run("normalizes email before lookup", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		f.expectLookup("doc@x.com", nil, independentAccount("doc@x.com", 2), nil)

		result, err := f.svc.Login(ctx, service.LoginInput{Email: "  Doc@X.COM ", Password: "p@ss1"})
		require.NoError(t, err)
		assert.Equal(t, "assigned-patients", result.Data.Route)
	})

	t.Run("admin of pending organization", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		org := activeOrg()
		org.Status = model.OrgPending
		f.expectLookup("admin@y.com", adminAccount("admin@y.com", org), nil, nil)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "admin@y.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrOrganizationPending)
		assert.Zero(t, f.verifier.invocations, "gating must run before password verification")
	})

	t.Run("admin of suspended organization", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		org := activeOrg()
		org.Status = model.OrgSuspended
		f.expectLookup("admin@y.com", adminAccount("admin@y.com", org), nil, nil)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "admin@y.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrSuspended)
		assert.Zero(t, f.verifier.invocations)
	})

	t.Run("suspended admin account in active organization", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		admin := adminAccount("admin@y.com", activeOrg())
		admin.Status = model.StatusSuspended
		f.expectLookup("admin@y.com", admin, nil, nil)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "admin@y.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrSuspended)
		assert.Zero(t, f.verifier.invocations)
	})

	t.Run("affiliated practitioner with no assigned patients", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		f.expectLookup("rad@y.com", nil, nil, affiliatedAccount("rad@y.com", activeOrg(), 0))

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "rad@y.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrNoPatientsAssigned)
		assert.Zero(t, f.verifier.invocations)
	})

	t.Run("independent practitioner with no assigned patients", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		f.expectLookup("doc@x.com", nil, independentAccount("doc@x.com", 0), nil)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "doc@x.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrNoPatientsAssigned)
		assert.Zero(t, f.verifier.invocations)
	})

	t.Run("eligible admin logs in with dashboard route", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		org := activeOrg()
		admin := adminAccount("admin@y.com", org)
		f.expectLookup("admin@y.com", admin, nil, nil)

		result, err := f.svc.Login(ctx, service.LoginInput{Email: "admin@y.com", Password: "p@ss1"})
		require.NoError(t, err)
		assert.Equal(t, admin.ID, result.Data.ID)
		assert.Equal(t, model.RoleOrgAdmin, result.Data.Role)
		assert.Equal(t, fmt.Sprintf("%s/dashboard", org.ID), result.Data.Route)
		assert.Equal(t, "token-"+admin.ID.String(), result.AccessToken)
		assert.Equal(t, "Login successful", result.Message)
		assert.Equal(t, string(model.RoleOrgAdmin), f.issuer.lastRole)
		assert.Equal(t, string(model.StatusActive), f.issuer.lastStatus)
	})

	t.Run("eligible affiliated practitioner routes to assignments", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		p := affiliatedAccount("rad@y.com", activeOrg(), 3)
		f.expectLookup("rad@y.com", nil, nil, p)

		result, err := f.svc.Login(ctx, service.LoginInput{Email: "rad@y.com", Password: "p@ss1"})
		require.NoError(t, err)
		assert.Equal(t, p.ID, result.Data.ID)
		assert.Equal(t, model.RoleRadiologist, result.Data.Role)
		assert.Equal(t, "assigned-patients", result.Data.Route)
		assert.Equal(t, "token-"+p.ID.String(), result.AccessToken)
	})

	t.Run("eligible independent practitioner routes to assignments", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		p := independentAccount("doc@x.com", 1)
		f.expectLookup("doc@x.com", nil, p, nil)

		result, err := f.svc.Login(ctx, service.LoginInput{Email: "doc@x.com", Password: "p@ss1"})
		require.NoError(t, err)
		assert.Equal(t, p.ID, result.Data.ID)
		assert.Equal(t, model.RoleDoctor, result.Data.Role)
		assert.Equal(t, "assigned-patients", result.Data.Route)
	})

	t.Run("suspended independent practitioner with assignments still logs in", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		p := independentAccount("doc@x.com", 1)
		p.Status = model.StatusSuspended
		f.expectLookup("doc@x.com", nil, p, nil)

		result, err := f.svc.Login(ctx, service.LoginInput{Email: "doc@x.com", Password: "p@ss1"})
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusSuspended), f.issuer.lastStatus)
		assert.Equal(t, "assigned-patients", result.Data.Route)
	})

	t.Run("wrong password on an eligible account", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		f.expectLookup("doc@x.com", nil, independentAccount("doc@x.com", 1), nil)

		result, err := f.svc.Login(ctx, service.LoginInput{Email: "doc@x.com", Password: "wrong"})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Equal(t, 1, f.verifier.invocations)
	})

	t.Run("repeated failed attempts behave identically", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		for i := 0; i < 3; i++ {
			f.expectLookup("doc@x.com", nil, independentAccount("doc@x.com", 1), nil)
		}

		for i := 0; i < 3; i++ {
			_, err := f.svc.Login(ctx, service.LoginInput{Email: "doc@x.com", Password: "wrong"})
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("email in both organization collections fails before verification", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		org := activeOrg()
		f.expectLookup("dup@y.com",
			adminAccount("dup@y.com", org),
			nil,
			affiliatedAccount("dup@y.com", org, 2),
		)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "dup@y.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrAmbiguousIdentity)
		assert.Zero(t, f.verifier.invocations)
	})

	t.Run("password valid in two collections is ambiguous", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		f.expectLookup("dup@x.com",
			adminAccount("dup@x.com", activeOrg()),
			independentAccount("dup@x.com", 1),
			nil,
		)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "dup@x.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrAmbiguousIdentity)
		assert.Equal(t, 2, f.verifier.invocations)
	})

	t.Run("password valid in exactly one of two matches resolves to it", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		admin := adminAccount("dup@x.com", activeOrg())
		other := independentAccount("dup@x.com", 1)
		other.PasswordHash = "hashed:different"
		f.expectLookup("dup@x.com", admin, other, nil)

		result, err := f.svc.Login(ctx, service.LoginInput{Email: "dup@x.com", Password: "p@ss1"})
		require.NoError(t, err)
		assert.Equal(t, admin.ID, result.Data.ID)
		assert.Equal(t, model.RoleOrgAdmin, result.Data.Role)
	})

	t.Run("organization gate fires even when another branch is eligible", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		org := activeOrg()
		org.Status = model.OrgPending
		f.expectLookup("dup@x.com",
			adminAccount("dup@x.com", org),
			independentAccount("dup@x.com", 1),
			nil,
		)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "dup@x.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrOrganizationPending)
		assert.Zero(t, f.verifier.invocations)
	})

	t.Run("token issuance failure surfaces as its own error", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		f.issuer.err = errors.New("signing key unavailable")
		f.expectLookup("doc@x.com", nil, independentAccount("doc@x.com", 1), nil)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "doc@x.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, domain.ErrTokenIssuance)
	})

	t.Run("store error during lookup propagates", func(t *testing.T) {
		f := newLoginFixture(ctrl)
		storeErr := errors.New("connection refused")
		f.adminRepo.EXPECT().FindByEmail(gomock.Any(), "doc@x.com").Return(nil, storeErr)
		f.practitionerRepo.EXPECT().FindByEmail(gomock.Any(), "doc@x.com").Return(nil, domain.ErrAccountNotFound)
		f.orgPractitionerRepo.EXPECT().FindByEmail(gomock.Any(), "doc@x.com").Return(nil, domain.ErrAccountNotFound)

		_, err := f.svc.Login(ctx, service.LoginInput{Email: "doc@x.com", Password: "p@ss1"})
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, domain.ErrAccountNotFound)
	})
}
