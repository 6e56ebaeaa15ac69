// internal/model/account.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AccountStatus string

const (
	StatusPending   AccountStatus = "PENDING"
	StatusActive    AccountStatus = "ACTIVE"
	StatusSuspended AccountStatus = "SUSPENDED"
)

type Role string

const (
	RoleDoctor      Role = "doctor"
	RoleRadiologist Role = "radiologist"
	RoleOrgAdmin    Role = "organizationAdmin"
)

// PractitionerRole maps a submitted profession onto a role tag.
// Only clinical professions are accepted at practitioner signup.
func PractitionerRole(profession string) (Role, bool) {
	switch Role(profession) {
	case RoleDoctor:
		return RoleDoctor, true
	case RoleRadiologist:
		return RoleRadiologist, true
	}
	return "", false
}

// OrgAdmin is an organization administrator account. Exactly one admin
// per organization carries the primary flag, set at organization signup.
type OrgAdmin struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string        `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Fullname       string        `gorm:"type:text;not null" json:"fullname"`
	Phone          string        `gorm:"type:text" json:"phone"`
	PasswordHash   string        `gorm:"column:password;type:text;not null" json:"-"`
	Role           Role          `gorm:"type:text;not null;default:'organizationAdmin'" json:"role"`
	Status         AccountStatus `gorm:"type:account_status;not null;default:'PENDING'" json:"status"`
	PrimaryAdmin   bool          `gorm:"not null;default:false" json:"primary_admin"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null" json:"organization_id"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// Practitioner is an independent practitioner account. It has no
// organization reference; login eligibility is gated on having at least
// one assigned patient.
type Practitioner struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string        `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Fullname       string        `gorm:"type:text;not null" json:"fullname"`
	Phone          string        `gorm:"type:text" json:"phone"`
	PasswordHash   string        `gorm:"column:password;type:text;not null" json:"-"`
	Role           Role          `gorm:"type:text;not null" json:"role"`
	Status         AccountStatus `gorm:"type:account_status;not null;default:'PENDING'" json:"status"`
	PracticeNumber string        `gorm:"type:citext;uniqueIndex;not null" json:"practice_number"`
	Affiliation    string        `gorm:"type:text" json:"affiliation"`
	Address        string        `gorm:"type:text" json:"address"`
	City           string        `gorm:"type:text" json:"city"`
	State          string        `gorm:"type:text" json:"state"`
	Country        string        `gorm:"type:text" json:"country"`
	ZipCode        string        `gorm:"type:text" json:"zip_code"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	AssignedPatients []Patient `gorm:"foreignKey:PractitionerID" json:"-"`
}

// OrgPractitioner is a practitioner affiliated with an organization.
type OrgPractitioner struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string        `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Fullname       string        `gorm:"type:text;not null" json:"fullname"`
	Phone          string        `gorm:"type:text" json:"phone"`
	PasswordHash   string        `gorm:"column:password;type:text;not null" json:"-"`
	Role           Role          `gorm:"type:text;not null" json:"role"`
	Status         AccountStatus `gorm:"type:account_status;not null;default:'PENDING'" json:"status"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null" json:"organization_id"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Organization     Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	AssignedPatients []Patient    `gorm:"foreignKey:OrgPractitionerID" json:"-"`
}
