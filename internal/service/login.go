// internal/service/login.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/meridia/identity/internal/domain"
	"github.com/meridia/identity/internal/model"
	"github.com/meridia/identity/internal/transform"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Data        *Identity `json:"data"`
	AccessToken string    `json:"access_token"`
	Message     string    `json:"message"`
}

// accountMatches holds the outcome of the three-way email lookup. In a
// correctly provisioned store at most one field is set.
type accountMatches struct {
	admin       *model.OrgAdmin
	independent *model.Practitioner
	affiliated  *model.OrgPractitioner
}

// Login resolves an email/password pair into a role-scoped session.
//
// The email is looked up across the three account collections, the
// matched branches are gated on organization and account lifecycle
// state, and only then is the password compared against the matched
// record. Gating errors, credential errors, and provisioning faults all
// terminate the attempt; nothing here retries.
func (s *IdentityService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	email := transform.NormalizeEmail(input.Email)

	matches, err := s.lookupAccounts(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up accounts: %w", err)
	}

	if matches.admin == nil && matches.independent == nil && matches.affiliated == nil {
		return nil, domain.ErrAccountNotFound
	}

	// One email in both organization-owned collections means the store
	// is mis-provisioned. Refuse before any password work.
	if matches.admin != nil && matches.affiliated != nil {
		slog.ErrorContext(ctx, "email resolved in both admin and affiliated collections",
			"admin_id", matches.admin.ID,
			"org_practitioner_id", matches.affiliated.ID,
		)
		return nil, domain.ErrAmbiguousIdentity
	}

	var verified []Identity

	if matches.admin != nil || matches.affiliated != nil {
		identity, err := s.resolveOrgBranch(matches, input.Password)
		if err != nil {
			return nil, err
		}
		if identity != nil {
			verified = append(verified, *identity)
		}
	}

	// The independent-practitioner branch has no organization gating and
	// is evaluated on its own.
	if matches.independent != nil {
		identity, err := s.resolveIndependentBranch(matches.independent, input.Password)
		if err != nil {
			return nil, err
		}
		if identity != nil {
			verified = append(verified, *identity)
		}
	}

	switch len(verified) {
	case 0:
		// A branch was reached but no password matched. Rendered with the
		// same external message as the no-match case.
		return nil, domain.ErrInvalidCredentials
	case 1:
	default:
		ids := make([]string, len(verified))
		for i, v := range verified {
			ids[i] = v.ID.String()
		}
		slog.ErrorContext(ctx, "password verified in more than one account collection", "account_ids", ids)
		return nil, domain.ErrAmbiguousIdentity
	}

	data := verified[0]

	token, err := s.tokens.Issue(data.ID.String(), string(data.Role), string(data.Status))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenIssuance, err)
	}

	return &LoginOutput{
		Data:        &data,
		AccessToken: token,
		Message:     "Login successful",
	}, nil
}

// lookupAccounts fans out the three email lookups concurrently and
// waits for all of them. The lookups share the caller's context, so a
// caller-supplied deadline aborts all three together.
func (s *IdentityService) lookupAccounts(ctx context.Context, email string) (*accountMatches, error) {
	var (
		matches accountMatches
		wg      sync.WaitGroup
	)
	errs := make(chan error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		admin, err := s.adminRepo.FindByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, domain.ErrAccountNotFound) {
				errs <- err
			}
			return
		}
		matches.admin = admin
	}()
	go func() {
		defer wg.Done()
		p, err := s.practitionerRepo.FindByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, domain.ErrAccountNotFound) {
				errs <- err
			}
			return
		}
		matches.independent = p
	}()
	go func() {
		defer wg.Done()
		p, err := s.orgPractitionerRepo.FindByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, domain.ErrAccountNotFound) {
				errs <- err
			}
			return
		}
		matches.affiliated = p
	}()

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}
	return &matches, nil
}

// resolveOrgBranch gates and verifies the organization-owned match
// (admin or affiliated practitioner). Gating runs strictly before the
// password comparison so an ineligible account never learns whether its
// password was right. A nil, nil return means the password did not
// match.
func (s *IdentityService) resolveOrgBranch(matches *accountMatches, password string) (*Identity, error) {
	var (
		org    model.Organization
		status model.AccountStatus
	)
	if matches.admin != nil {
		org = matches.admin.Organization
		status = matches.admin.Status
	} else {
		org = matches.affiliated.Organization
		status = matches.affiliated.Status
	}

	if org.Status == model.OrgPending {
		return nil, domain.ErrOrganizationPending
	}
	if org.Status == model.OrgSuspended || status == model.StatusSuspended {
		return nil, domain.ErrSuspended
	}

	if matches.admin != nil {
		ok, err := s.hasher.Verify(password, matches.admin.PasswordHash)
		if err != nil {
			return nil, fmt.Errorf("verifying password: %w", err)
		}
		if !ok {
			return nil, nil
		}
		return &Identity{
			ID:     matches.admin.ID,
			Role:   matches.admin.Role,
			Status: matches.admin.Status,
			Route:  fmt.Sprintf("%s/dashboard", org.ID),
		}, nil
	}

	// An affiliated practitioner with nothing assigned has no usable
	// action in the system yet; treat it as a hard login block.
	if len(matches.affiliated.AssignedPatients) == 0 {
		return nil, domain.ErrNoPatientsAssigned
	}

	ok, err := s.hasher.Verify(password, matches.affiliated.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &Identity{
		ID:     matches.affiliated.ID,
		Role:   matches.affiliated.Role,
		Status: matches.affiliated.Status,
		Route:  "assigned-patients",
	}, nil
}

// resolveIndependentBranch gates and verifies an independent
// practitioner match. Independent accounts carry no organization
// reference, so the only gate is the assignment check.
func (s *IdentityService) resolveIndependentBranch(p *model.Practitioner, password string) (*Identity, error) {
	if len(p.AssignedPatients) == 0 {
		return nil, domain.ErrNoPatientsAssigned
	}

	ok, err := s.hasher.Verify(password, p.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &Identity{
		ID:     p.ID,
		Role:   p.Role,
		Status: p.Status,
		Route:  "assigned-patients",
	}, nil
}
