package intake

import (
	"github.com/google/uuid"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// IngestResponse reports what an ingest resolved or created
type IngestResponse struct {
	Matched         bool                             `json:"matched"`
	LawFirmID       uuid.UUID                        `json:"law_firm_id"`
	ClientID        uuid.UUID                        `json:"client_id"`
	CaseID          uuid.UUID                        `json:"case_id"`
	CommunicationID uuid.UUID                        `json:"communication_id"`
	Result          *entities.IntakeExtractionResult `json:"result"`
}

// ParseResponse carries the classified result of a transcript parse
type ParseResponse struct {
	Result *entities.IntakeExtractionResult `json:"result"`
}
