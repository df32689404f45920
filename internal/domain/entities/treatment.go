package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Treatment represents a course of medical treatment on a case
type Treatment struct {
	ID            uuid.UUID                  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CaseID        uuid.UUID                  `json:"case_id" gorm:"type:uuid;not null;index"`
	ProviderID    *uuid.UUID                 `json:"provider_id,omitempty" gorm:"type:uuid;index"`
	TreatmentType string                     `json:"treatment_type,omitempty" gorm:"type:varchar(255)"`
	StartDate     *time.Time                 `json:"start_date,omitempty" gorm:"type:date;index"`
	EndDate       *time.Time                 `json:"end_date,omitempty" gorm:"type:date"`
	Diagnosis     string                     `json:"diagnosis,omitempty" gorm:"type:text"`
	ICDCodes      datatypes.JSONSlice[string] `json:"icd_codes,omitempty" gorm:"type:jsonb"`
	BilledAmount  *float64                   `json:"billed_amount,omitempty" gorm:"type:numeric(14,2)"`
	PaidAmount    *float64                   `json:"paid_amount,omitempty" gorm:"type:numeric(14,2)"`
	Notes         string                     `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Treatment) TableName() string {
	return "treatments"
}
