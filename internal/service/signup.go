// internal/service/signup.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/meridia/identity/internal/domain"
	"github.com/meridia/identity/internal/email/mailer"
	"github.com/meridia/identity/internal/model"
	"github.com/meridia/identity/internal/transform"
)

type PractitionerSignupInput struct {
	Fullname       string `json:"fullname" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Phone          string `json:"phone"`
	PracticeNumber string `json:"practice_number" validate:"required"`
	Profession     string `json:"profession" validate:"required"`
	Affiliation    string `json:"affiliation"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	ZipCode        string `json:"zip_code"`
}

type SignupOutput struct {
	Message string `json:"message"`
}

// PractitionerSignup registers an independent practitioner. The account
// starts PENDING and stays unusable until a specialist verifies it.
func (s *IdentityService) PractitionerSignup(ctx context.Context, input PractitionerSignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	role, ok := model.PractitionerRole(strings.ToLower(input.Profession))
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedRole, input.Profession)
	}

	emailAddr := transform.NormalizeEmail(input.Email)

	existing, err := s.practitionerRepo.FindByEmailOrPracticeNumber(ctx, emailAddr, input.PracticeNumber)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrPractitionerExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	practitioner := &model.Practitioner{
		Email:          emailAddr,
		Fullname:       transform.TitleText(input.Fullname),
		Phone:          input.Phone,
		PasswordHash:   hash,
		Role:           role,
		Status:         model.StatusPending,
		PracticeNumber: input.PracticeNumber,
		Affiliation:    input.Affiliation,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
		Country:        input.Country,
		ZipCode:        input.ZipCode,
	}

	if err := s.practitionerRepo.Create(ctx, practitioner); err != nil {
		return nil, fmt.Errorf("creating practitioner: %w", err)
	}

	if s.emailService != nil {
		if err := mailer.SendPractitionerPending(s.emailService, practitioner.Email, practitioner.Fullname); err != nil {
			slog.WarnContext(ctx, "failed to send practitioner signup email", "error", err)
		}
	}

	return &SignupOutput{
		Message: "You will be notified when you're verified by our specialist.",
	}, nil
}

type OrganizationSignupInput struct {
	OrganizationName string `json:"organization_name" validate:"required"`
	Fullname         string `json:"fullname" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	City             string `json:"city"`
	State            string `json:"state"`
	Country          string `json:"country"`
	ZipCode          string `json:"zip_code"`
}

// OrganizationSignup registers a care-provider organization and its
// primary admin in one transaction. Both start PENDING; platform admins
// flip the organization ACTIVE out of band.
func (s *IdentityService) OrganizationSignup(ctx context.Context, input OrganizationSignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	emailAddr := transform.NormalizeEmail(input.Email)

	existing, err := s.orgRepo.FindByEmailOrName(ctx, emailAddr, input.OrganizationName)
	if err != nil && !errors.Is(err, domain.ErrOrganizationNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrOrganizationExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	org := &model.Organization{
		Name:    input.OrganizationName,
		Email:   emailAddr,
		Phone:   input.Phone,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Country: input.Country,
		ZipCode: input.ZipCode,
		Status:  model.OrgPending,
	}

	admin := &model.OrgAdmin{
		Email:        emailAddr,
		Fullname:     transform.TitleText(input.Fullname),
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         model.RoleOrgAdmin,
		Status:       model.StatusPending,
	}

	if err := s.orgRepo.CreateWithAdmin(ctx, org, admin); err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	if s.emailService != nil {
		if err := mailer.SendOrganizationWelcome(s.emailService, admin.Email, admin.Fullname, org.Name); err != nil {
			slog.WarnContext(ctx, "failed to send organization signup email", "error", err)
		}
	}

	return &SignupOutput{
		Message: "You'll be notified when your organization is verified by our admin.",
	}, nil
}
