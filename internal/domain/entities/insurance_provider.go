package entities

import (
	"time"

	"github.com/google/uuid"
)

// CoverageType classifies an insurance policy's coverage
type CoverageType string

const (
	CoverageTypeLiability          CoverageType = "liability"
	CoverageTypeUninsuredMotorist  CoverageType = "uninsured_motorist"
	CoverageTypeMedicalPayments    CoverageType = "medical_payments"
	CoverageTypeHealth             CoverageType = "health"
	CoverageTypeWorkersComp        CoverageType = "workers_comp"
	CoverageTypeOther              CoverageType = "other"
)

// InsuranceProvider represents an insurance carrier tied to either the client
// or an other party. Exactly one of InsuredClientID / InsuredOtherPartyID is set.
type InsuranceProvider struct {
	ID                  uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InsuredClientID     *uuid.UUID   `json:"insured_client_id,omitempty" gorm:"type:uuid;index"`
	InsuredOtherPartyID *uuid.UUID   `json:"insured_other_party_id,omitempty" gorm:"type:uuid;index"`
	CompanyName         string       `json:"company_name" gorm:"type:varchar(255);not null"`
	PolicyNumber        string       `json:"policy_number,omitempty" gorm:"type:varchar(100)"`
	ClaimNumber         string       `json:"claim_number,omitempty" gorm:"type:varchar(100)"`
	CoverageType        CoverageType `json:"coverage_type" gorm:"type:varchar(30);default:'liability'"`
	PolicyLimit         *float64     `json:"policy_limit,omitempty" gorm:"type:numeric(14,2)"`
	AdjusterName        string       `json:"adjuster_name,omitempty" gorm:"type:varchar(255)"`
	AdjusterPhone       string       `json:"adjuster_phone,omitempty" gorm:"type:varchar(50)"`
	AdjusterEmail       string       `json:"adjuster_email,omitempty" gorm:"type:varchar(255)"`
	CreatedAt           time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (InsuranceProvider) TableName() string {
	return "insurance_providers"
}
