// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	CreateWithAdmin(ctx context.Context, org *model.Organization, admin *model.OrgAdmin) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindByEmailOrName(ctx context.Context, email, name string) (*model.Organization, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithAdmin creates an organization and its primary admin in one
// transaction. Either both rows land or neither does.
func (r *OrganizationRepository) CreateWithAdmin(ctx context.Context, org *model.Organization, admin *model.OrgAdmin) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		admin.OrganizationID = org.ID
		admin.PrimaryAdmin = true

		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("creating primary admin: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	result := r.db.WithContext(ctx).First(&org, "id = ?", id)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, domain.ErrOrganizationNotFound, "organization")
	}
	return &org, nil
}

// FindByEmailOrName is the signup conflict probe. Both columns are
// citext, so the match is case-insensitive.
func (r *OrganizationRepository) FindByEmailOrName(ctx context.Context, email, name string) (*model.Organization, error) {
	var org model.Organization
	result := r.db.WithContext(ctx).Where("email = ? OR name = ?", email, name).First(&org)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", result.Error)
	}
	return &org, nil
}
