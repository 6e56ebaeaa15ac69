// internal/repository/org_admin.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meridia/identity/internal/domain"
	"github.com/meridia/identity/internal/model"
	"gorm.io/gorm"
)

type OrgAdminRepositoryIface interface {
	Create(ctx context.Context, admin *model.OrgAdmin) error
	FindByEmail(ctx context.Context, email string) (*model.OrgAdmin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrgAdmin, error)
	Update(ctx context.Context, admin *model.OrgAdmin) error
}

type OrgAdminRepository struct {
	db *gorm.DB
}

func NewOrgAdminRepository(db *gorm.DB) *OrgAdminRepository {
	return &OrgAdminRepository{db: db}
}

func (r *OrgAdminRepository) Create(ctx context.Context, admin *model.OrgAdmin) error {
	result := r.db.WithContext(ctx).Create(admin)
	if result.Error != nil {
		return fmt.Errorf("failed to create admin: %w", result.Error)
	}
	return nil
}

// FindByEmail loads the admin together with its organization; the login
// gate reads the organization status before anything else. The email
// column is citext, so the match is case-insensitive.
func (r *OrgAdminRepository) FindByEmail(ctx context.Context, email string) (*model.OrgAdmin, error) {
	var admin model.OrgAdmin
	result := r.db.WithContext(ctx).Preload("Organization").Where("email = ?", email).First(&admin)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, domain.ErrAccountNotFound, "admin")
	}
	return &admin, nil
}

func (r *OrgAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OrgAdmin, error) {
	var admin model.OrgAdmin
	result := r.db.WithContext(ctx).First(&admin, "id = ?", id)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, domain.ErrAccountNotFound, "admin")
	}
	return &admin, nil
}

func (r *OrgAdminRepository) Update(ctx context.Context, admin *model.OrgAdmin) error {
	result := r.db.WithContext(ctx).Save(admin)
	if result.Error != nil {
		return fmt.Errorf("failed to update admin: %w", result.Error)
	}
	return nil
}
