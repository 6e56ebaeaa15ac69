// internal/model/patient.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient carries the assignment references the login gate reads. A
// patient is assigned to at most one practitioner of either kind;
// records, imaging, and the rest of the patient chart live outside this
// service.
type Patient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MRN      string    `gorm:"type:text;uniqueIndex;not null" json:"mrn"`
	Fullname string    `gorm:"type:text;not null" json:"fullname"`
	Email    string    `gorm:"type:citext" json:"email"`
	Phone    string    `gorm:"type:text" json:"phone"`

	PractitionerID    *uuid.UUID `gorm:"type:uuid" json:"practitioner_id,omitempty"`
	OrgPractitionerID *uuid.UUID `gorm:"type:uuid" json:"org_practitioner_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
