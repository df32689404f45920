package entities

import (
	"time"

	"github.com/google/uuid"
)

// MedicalProvider represents an individual treating provider, optionally
// attached to a facility
type MedicalProvider struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FacilityID *uuid.UUID `json:"facility_id,omitempty" gorm:"type:uuid;index"`
	FirstName  string     `json:"first_name" gorm:"type:varchar(100);index:idx_medical_providers_name"`
	LastName   string     `json:"last_name" gorm:"type:varchar(100);index:idx_medical_providers_name"`
	Specialty  string     `json:"specialty,omitempty" gorm:"type:varchar(100)"`
	NPI        string     `json:"npi,omitempty" gorm:"type:varchar(20)"`
	Phone      string     `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Email      string     `json:"email,omitempty" gorm:"type:varchar(255)"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (MedicalProvider) TableName() string {
	return "medical_providers"
}
