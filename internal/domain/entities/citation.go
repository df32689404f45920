package entities

import (
	"time"

	"github.com/google/uuid"
)

// Citation ties a derived fact to the transcript excerpt that supports it.
// A citation is exclusively owned by its communication.
type Citation struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CommunicationID uuid.UUID `json:"communication_id" gorm:"type:uuid;not null;index"`
	CitationKey     string    `json:"citation_key" gorm:"type:varchar(100);index:idx_citations_key_confidence"`
	CitedText       string    `json:"cited_text" gorm:"type:text"`
	TurnIndex       *int      `json:"turn_index,omitempty"`
	ConfidenceScore float64   `json:"confidence_score" gorm:"default:1.0;index:idx_citations_key_confidence"`
	Notes           string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Citation) TableName() string {
	return "citations"
}

// ReferenceKind names a referenceable entity kind. The set is closed; values
// are only produced by the constructors in the intake usecase.
type ReferenceKind string

const (
	ReferenceKindClient            ReferenceKind = "client"
	ReferenceKindOtherParty        ReferenceKind = "other_party"
	ReferenceKindMedicalProvider   ReferenceKind = "medical_provider"
	ReferenceKindInsuranceProvider ReferenceKind = "insurance_provider"
)

// CitationReference is a typed weak back-link from a citation to the domain
// entity it supports. It holds kind + identifier, never an owning pointer,
// because the referenced entity's lifecycle is independent.
type CitationReference struct {
	ID                uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CitationID        uuid.UUID     `json:"citation_id" gorm:"type:uuid;not null;index"`
	ReferenceKind     ReferenceKind `json:"reference_kind" gorm:"type:varchar(30);index:idx_citation_refs_target"`
	ReferencedID      uuid.UUID     `json:"referenced_id" gorm:"type:uuid;index:idx_citation_refs_target"`
	RelationshipLabel string        `json:"relationship_label,omitempty" gorm:"type:varchar(100)"`
	CreatedAt         time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CitationReference) TableName() string {
	return "citation_references"
}
