// internal/service/service.go
package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/meridia/identity/internal/config"
	"github.com/meridia/identity/internal/email"
	"github.com/meridia/identity/internal/model"
	"github.com/meridia/identity/internal/repository"
)

// PasswordVerifier hashes plaintext passwords and checks them against
// stored digests. Satisfied by auth.PasswordHasher.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// TokenIssuer signs a minimal claim set into a bearer token. Satisfied
// by auth.TokenManager. Key, expiry, and algorithm are the issuer's own
// configuration.
type TokenIssuer interface {
	Issue(sub, role, status string) (string, error)
}

// Identity is the resolver's normalized output: which account matched,
// under which role, and where the client should land. Built per login
// attempt and discarded after token issuance.
type Identity struct {
	ID     uuid.UUID           `json:"id"`
	Role   model.Role          `json:"role"`
	Status model.AccountStatus `json:"status"`
	Route  string              `json:"route"`
}

// IdentityService resolves credentials across the three account
// collections and owns the peripheral signup and password flows. It is
// constructed once per process; every call gets explicit inputs and no
// state is shared between attempts.
type IdentityService struct {
	adminRepo           repository.OrgAdminRepositoryIface
	practitionerRepo    repository.PractitionerRepositoryIface
	orgPractitionerRepo repository.OrgPractitionerRepositoryIface
	orgRepo             repository.OrganizationRepositoryIface
	hasher              PasswordVerifier
	tokens              TokenIssuer
	emailService        *email.Service
	config              *config.Config
	validate            *validator.Validate
}

func NewIdentityService(
	adminRepo repository.OrgAdminRepositoryIface,
	practitionerRepo repository.PractitionerRepositoryIface,
	orgPractitionerRepo repository.OrgPractitionerRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	hasher PasswordVerifier,
	tokens TokenIssuer,
	emailService *email.Service,
	config *config.Config,
) *IdentityService {
	return &IdentityService{
		adminRepo:           adminRepo,
		practitionerRepo:    practitionerRepo,
		orgPractitionerRepo: orgPractitionerRepo,
		orgRepo:             orgRepo,
		hasher:              hasher,
		tokens:              tokens,
		emailService:        emailService,
		config:              config,
		validate:            validator.New(),
	}
}
