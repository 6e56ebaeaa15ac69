// internal/repository/org_practitioner.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meridia/identity/internal/domain"
	"github.com/meridia/identity/internal/model"
	"gorm.io/gorm"
)

type OrgPractitionerRepositoryIface interface {
	Create(ctx context.Context, p *model.OrgPractitioner) error
	FindByEmail(ctx context.Context, email string) (*model.OrgPractitioner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrgPractitioner, error)
	Update(ctx context.Context, p *model.OrgPractitioner) error
}

type OrgPractitionerRepository struct {
	db *gorm.DB
}

func NewOrgPractitionerRepository(db *gorm.DB) *OrgPractitionerRepository {
	return &OrgPractitionerRepository{db: db}
}

func (r *OrgPractitionerRepository) Create(ctx context.Context, p *model.OrgPractitioner) error {
	result := r.db.WithContext(ctx).Create(p)
	if result.Error != nil {
		return fmt.Errorf("failed to create org practitioner: %w", result.Error)
	}
	return nil
}

// FindByEmail loads the practitioner with both the owning organization
// and the assigned patients; the login gate needs both.
func (r *OrgPractitionerRepository) FindByEmail(ctx context.Context, email string) (*model.OrgPractitioner, error) {
	var p model.OrgPractitioner
	result := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("AssignedPatients").
		Where("email = ?", email).
		First(&p)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, domain.ErrAccountNotFound, "org practitioner")
	}
	return &p, nil
}

func (r *OrgPractitionerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OrgPractitioner, error) {
	var p model.OrgPractitioner
	result := r.db.WithContext(ctx).First(&p, "id = ?", id)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, domain.ErrAccountNotFound, "org practitioner")
	}
	return &p, nil
}

func (r *OrgPractitionerRepository) Update(ctx context.Context, p *model.OrgPractitioner) error {
	result := r.db.WithContext(ctx).Save(p)
	if result.Error != nil {
		return fmt.Errorf("failed to update org practitioner: %w", result.Error)
	}
	return nil
}
