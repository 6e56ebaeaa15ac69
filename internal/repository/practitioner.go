// internal/repository/practitioner.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/meridia/identity/internal/domain"
	"github.com/meridia/identity/internal/model"
	"gorm.io/gorm"
)

type PractitionerRepositoryIface interface {
	Create(ctx context.Context, p *model.Practitioner) error
	FindByEmail(ctx context.Context, email string) (*model.Practitioner, error)
	FindByEmailOrPracticeNumber(ctx context.Context, email, practiceNumber string) (*model.Practitioner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Practitioner, error)
	Update(ctx context.Context, p *model.Practitioner) error
}

type PractitionerRepository struct {
	db *gorm.DB
}

func NewPractitionerRepository(db *gorm.DB) *PractitionerRepository {
	return &PractitionerRepository{db: db}
}

func (r *PractitionerRepository) Create(ctx context.Context, p *model.Practitioner) error {
	result := r.db.WithContext(ctx).Create(p)
	if result.Error != nil {
		return fmt.Errorf("failed to create practitioner: %w", result.Error)
	}
	return nil
}

// FindByEmail loads the practitioner with its assigned patients; the
// login gate rejects accounts with nothing assigned.
func (r *PractitionerRepository) FindByEmail(ctx context.Context, email string) (*model.Practitioner, error) {
	var p model.Practitioner
	result := r.db.WithContext(ctx).Preload("AssignedPatients").Where("email = ?", email).First(&p)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, domain.ErrAccountNotFound, "practitioner")
	}
	return &p, nil
}

// FindByEmailOrPracticeNumber is the signup conflict probe.
func (r *PractitionerRepository) FindByEmailOrPracticeNumber(ctx context.Context, email, practiceNumber string) (*model.Practitioner, error) {
	var p model.Practitioner
	result := r.db.WithContext(ctx).
		Where("email = ? OR practice_number = ?", email, practiceNumber).
		First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find practitioner: %w", result.Error)
	}
	return &p, nil
}

func (r *PractitionerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Practitioner, error) {
	var p model.Practitioner
	result := r.db.WithContext(ctx).First(&p, "id = ?", id)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, domain.ErrAccountNotFound, "practitioner")
	}
	return &p, nil
}

func (r *PractitionerRepository) Update(ctx context.Context, p *model.Practitioner) error {
	result := r.db.WithContext(ctx).Save(p)
	if result.Error != nil {
		return fmt.Errorf("failed to update practitioner: %w", result.Error)
	}
	return nil
}
