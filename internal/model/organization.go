// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type OrgStatus string

const (
	OrgPending   OrgStatus = "PENDING"
	OrgActive    OrgStatus = "ACTIVE"
	OrgSuspended OrgStatus = "SUSPENDED"
)

// Organization is a care-provider entity. It owns its administrator and
// affiliated-practitioner accounts; independent practitioners carry no
// reference to it.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:citext;uniqueIndex;not null" json:"name"`
	Email     string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"type:text" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	City      string    `gorm:"type:text" json:"city"`
	State     string    `gorm:"type:text" json:"state"`
	Country   string    `gorm:"type:text" json:"country"`
	ZipCode   string    `gorm:"type:text" json:"zip_code"`
	Status    OrgStatus `gorm:"type:org_status;not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Admins        []OrgAdmin        `gorm:"foreignKey:OrganizationID" json:"-"`
	Practitioners []OrgPractitioner `gorm:"foreignKey:OrganizationID" json:"-"`
}
