package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CaseStatus represents the lifecycle state of a case
type CaseStatus string

const (
	CaseStatusOpen    CaseStatus = "open"
	CaseStatusSettled CaseStatus = "settled"
	CaseStatusDropped CaseStatus = "dropped"
	CaseStatusTrial   CaseStatus = "trial"
	CaseStatusClosed  CaseStatus = "closed"
)

// IncidentType classifies the kind of incident underlying a case
type IncidentType string

const (
	IncidentTypeAuto               IncidentType = "auto"
	IncidentTypeSlipFall           IncidentType = "slip_fall"
	IncidentTypeMedicalMalpractice IncidentType = "medical_malpractice"
	IncidentTypeProductLiability   IncidentType = "product_liability"
	IncidentTypeWorkplace          IncidentType = "workplace"
	IncidentTypeOther              IncidentType = "other"
)

// Case represents a personal-injury matter for a client
type Case struct {
	ID                        uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientID                  uuid.UUID    `json:"client_id" gorm:"type:uuid;not null;index"`
	CaseNumber                string       `json:"case_number" gorm:"type:varchar(100);uniqueIndex"`
	Status                    CaseStatus   `json:"status" gorm:"type:varchar(20);default:'open';index"`
	IncidentType              IncidentType `json:"incident_type" gorm:"type:varchar(30);default:'other'"`
	IncidentDate              *time.Time   `json:"incident_date,omitempty" gorm:"type:date;index"`
	IncidentLocation          string       `json:"incident_location,omitempty" gorm:"type:text"`
	Description               string       `json:"description,omitempty" gorm:"type:text"`
	OutcomeStatus             string       `json:"outcome_status,omitempty" gorm:"type:varchar(50)"`
	OutcomeValue              *float64     `json:"outcome_value,omitempty" gorm:"type:numeric(14,2)"`
	StatuteOfLimitationsDate  *time.Time   `json:"statute_of_limitations_date,omitempty" gorm:"type:date"`
	CreatedAt                 time.Time    `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt                 time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Case) TableName() string {
	return "cases"
}

// NewCase creates a new open case with a generated intake case number
func NewCase(clientID uuid.UUID, incidentType IncidentType) *Case {
	if incidentType == "" {
		incidentType = IncidentTypeOther
	}
	return &Case{
		ID:           uuid.New(),
		ClientID:     clientID,
		CaseNumber:   NewCaseNumber(),
		Status:       CaseStatusOpen,
		IncidentType: incidentType,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// NewCaseNumber generates a case number of the form INTAKE-XXXXXXXX
func NewCaseNumber() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("INTAKE-%s", strings.ToUpper(hex[:8]))
}
