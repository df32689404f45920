package entities

import "time"

// Provenance carries the citation metadata behind a classified record. It is
// consumed by the provenance linker and never serialized to API responses.
type Provenance struct {
	CitedText  string     `json:"-"`
	TurnIndex  *int       `json:"-"`
	Confidence Confidence `json:"-"`
}

// PartyRecord is a classified other-party finding
type PartyRecord struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	CompanyName string     `json:"company_name"`
	Role        string     `json:"role"`
	Provenance  Provenance `json:"-"`
}

// ProviderRecord is a classified medical-provider finding. FacilityName is set
// for facilities; FirstName/LastName for individual providers.
type ProviderRecord struct {
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	FacilityName  string     `json:"facility_name"`
	Specialty     string     `json:"specialty"`
	TreatmentType string     `json:"treatment_type"`
	Diagnosis     string     `json:"diagnosis"`
	Provenance    Provenance `json:"-"`
}

// DamageRecord is a classified financial-expense finding. A nil
// EstimatedAmount means no currency-like number appeared in the value.
type DamageRecord struct {
	Category        DamageCategory `json:"category"`
	Description     string         `json:"description"`
	EstimatedAmount *float64       `json:"estimated_amount"`
	Provenance      Provenance     `json:"-"`
}

// CarrierRecord is a classified insurance-provider finding
type CarrierRecord struct {
	CompanyName  string       `json:"company_name"`
	PolicyNumber string       `json:"policy_number"`
	ClaimNumber  string       `json:"claim_number"`
	CoverageType CoverageType `json:"coverage_type"`
	AdjusterName string       `json:"adjuster_name"`
}

// IntakeExtractionResult is the classified, pipeline-facing output of one
// extraction. It is constructed once per pipeline invocation and not mutated
// afterwards except to append RawFlags.
type IntakeExtractionResult struct {
	IncidentDate      *time.Time         `json:"incident_date"`
	IncidentType      *IncidentType      `json:"incident_type"`
	IncidentLocation  *string            `json:"incident_location"`
	Injuries          []string           `json:"injuries"`
	MedicalProviders  []ProviderRecord   `json:"medical_providers"`
	InsuranceCarriers []CarrierRecord    `json:"insurance_carriers"`
	OtherParties      []PartyRecord      `json:"other_parties"`
	Damages           []DamageRecord     `json:"damages"`
	ConfidenceScores  map[string]float64 `json:"confidence_scores"`
	RawFlags          []string           `json:"raw_flags"`
}
