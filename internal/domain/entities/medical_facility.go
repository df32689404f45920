package entities

import (
	"time"

	"github.com/google/uuid"
)

// MedicalFacility represents a hospital, clinic, or other treatment facility
type MedicalFacility struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null;index"`
	FacilityType string    `json:"facility_type,omitempty" gorm:"type:varchar(100)"`
	Address      string    `json:"address,omitempty" gorm:"type:text"`
	Phone        string    `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Fax          string    `json:"fax,omitempty" gorm:"type:varchar(50)"`
	NPI          string    `json:"npi,omitempty" gorm:"type:varchar(20)"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (MedicalFacility) TableName() string {
	return "medical_facilities"
}
