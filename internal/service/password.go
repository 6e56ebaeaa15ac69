// internal/service/password.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/meridia/identity/internal/domain"
	"github.com/meridia/identity/internal/email/mailer"
	"github.com/meridia/identity/internal/model"
	"github.com/meridia/identity/internal/transform"
)

type ResetPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordOutput struct {
	Message string `json:"message"`
}

// ResetPassword resolves the email across the three account collections,
// stores the hash of a fresh temporary password on the matched record,
// and emails the plaintext to the account holder.
func (s *IdentityService) ResetPassword(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	emailAddr := transform.NormalizeEmail(input.Email)

	matches, err := s.lookupAccounts(ctx, emailAddr)
	if err != nil {
		return nil, fmt.Errorf("looking up accounts: %w", err)
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	var fullname string
	switch {
	case matches.admin != nil:
		matches.admin.PasswordHash = hash
		if err := s.adminRepo.Update(ctx, matches.admin); err != nil {
			return nil, fmt.Errorf("updating admin: %w", err)
		}
		fullname = matches.admin.Fullname
	case matches.independent != nil:
		matches.independent.PasswordHash = hash
		if err := s.practitionerRepo.Update(ctx, matches.independent); err != nil {
			return nil, fmt.Errorf("updating practitioner: %w", err)
		}
		fullname = matches.independent.Fullname
	case matches.affiliated != nil:
		matches.affiliated.PasswordHash = hash
		if err := s.orgPractitionerRepo.Update(ctx, matches.affiliated); err != nil {
			return nil, fmt.Errorf("updating org practitioner: %w", err)
		}
		fullname = matches.affiliated.Fullname
	default:
		return nil, domain.ErrAccountNotFound
	}

	if s.emailService != nil {
		if err := mailer.SendPasswordReset(s.emailService, emailAddr, fullname, tempPassword); err != nil {
			slog.WarnContext(ctx, "failed to send password reset email", "error", err)
		}
	}

	return &ResetPasswordOutput{
		Message: "A temporary password has been sent to your email.",
	}, nil
}

// Actor identifies the authenticated caller of an account-management
// operation, as carried in the bearer token.
type Actor struct {
	ID   uuid.UUID
	Role model.Role
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ChangePassword verifies the actor's current password and replaces it.
// The actor's role selects the account collection.
func (s *IdentityService) ChangePassword(ctx context.Context, actor Actor, input ChangePasswordInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	currentHash, update, err := s.loadAccountCredential(ctx, actor)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(input.CurrentPassword, currentHash)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return domain.ErrIncorrectCurrentPassword
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return update(hash)
}

// loadAccountCredential finds the actor's record and returns its stored
// hash plus a closure that persists a replacement. Practitioner roles
// exist in both practitioner collections, so those are probed in turn.
func (s *IdentityService) loadAccountCredential(ctx context.Context, actor Actor) (string, func(string) error, error) {
	if actor.Role == model.RoleOrgAdmin {
		admin, err := s.adminRepo.FindByID(ctx, actor.ID)
		if err != nil {
			return "", nil, err
		}
		return admin.PasswordHash, func(hash string) error {
			admin.PasswordHash = hash
			return s.adminRepo.Update(ctx, admin)
		}, nil
	}

	if p, err := s.practitionerRepo.FindByID(ctx, actor.ID); err == nil {
		return p.PasswordHash, func(hash string) error {
			p.PasswordHash = hash
			return s.practitionerRepo.Update(ctx, p)
		}, nil
	}

	p, err := s.orgPractitionerRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return "", nil, err
	}
	return p.PasswordHash, func(hash string) error {
		p.PasswordHash = hash
		return s.orgPractitionerRepo.Update(ctx, p)
	}, nil
}

// generateTempPassword returns a random hex password long enough to
// pass the change-password minimum.
func generateTempPassword() (string, error) {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating temporary password: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
