package intake

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexintake/intake-service/errors"
	"github.com/lexintake/intake-service/internal/domain/entities"
	"github.com/lexintake/intake-service/internal/domain/repositories"
)

// Citation keys written during persistence
const (
	CitationKeyCallerName       = "caller_name"
	CitationKeyAccidentDate     = "accident_date"
	CitationKeyCaseType         = "case_type"
	CitationKeyIncidentLocation = "incident_location"
	CitationKeyOtherParty       = "other_party"
	CitationKeyMedicalProvider  = "medical_provider"
	CitationKeyFinancialExpense = "financial_expense"
)

// CitationTarget names the entity a citation supports. A nil target writes a
// citation with no back-link.
type CitationTarget struct {
	Kind  entities.ReferenceKind
	ID    uuid.UUID
	Label string
}

// ClientTarget links a citation to a client
func ClientTarget(id uuid.UUID, label string) *CitationTarget {
	return &CitationTarget{Kind: entities.ReferenceKindClient, ID: id, Label: label}
}

// OtherPartyTarget links a citation to an other party
func OtherPartyTarget(id uuid.UUID, label string) *CitationTarget {
	return &CitationTarget{Kind: entities.ReferenceKindOtherParty, ID: id, Label: label}
}

// MedicalProviderTarget links a citation to a medical provider
func MedicalProviderTarget(id uuid.UUID, label string) *CitationTarget {
	return &CitationTarget{Kind: entities.ReferenceKindMedicalProvider, ID: id, Label: label}
}

// CitationWriter writes provenance citations for persisted records. Writes
// are best effort: a failed citation is logged and never aborts persistence.
type CitationWriter struct {
	citations repositories.CitationRepository
	logger    *zap.Logger
}

// NewCitationWriter creates a citation writer over the given repository
func NewCitationWriter(citations repositories.CitationRepository, logger *zap.Logger) *CitationWriter {
	return &CitationWriter{citations: citations, logger: logger}
}

// Write records a citation for a communication, optionally back-linked to the
// entity it supports.
func (w *CitationWriter) Write(ctx context.Context, communicationID uuid.UUID, key string, prov entities.Provenance, target *CitationTarget) {
	citation := &entities.Citation{
		ID:              uuid.New(),
		CommunicationID: communicationID,
		CitationKey:     key,
		CitedText:       prov.CitedText,
		TurnIndex:       prov.TurnIndex,
		ConfidenceScore: prov.Confidence.Score(),
	}
	if err := w.citations.CreateCitation(ctx, citation); err != nil {
		appErr := errors.ErrCitationWriteFailed(key, err)
		w.logger.Warn("citation write failed",
			zap.String("citation_key", key),
			zap.String("communication_id", communicationID.String()),
			zap.Error(appErr),
		)
		return
	}

	if target == nil {
		return
	}
	ref := &entities.CitationReference{
		ID:                uuid.New(),
		CitationID:        citation.ID,
		ReferenceKind:     target.Kind,
		ReferencedID:      target.ID,
		RelationshipLabel: target.Label,
	}
	if err := w.citations.CreateReference(ctx, ref); err != nil {
		w.logger.Warn("citation reference write failed",
			zap.String("citation_key", key),
			zap.String("reference_kind", string(target.Kind)),
			zap.Error(err),
		)
	}
}

// WriteFinding records a citation for a metadata finding, preferring the
// quoted excerpt and falling back to the finding value.
func (w *CitationWriter) WriteFinding(ctx context.Context, communicationID uuid.UUID, key string, f entities.Finding, target *CitationTarget) {
	w.Write(ctx, communicationID, key, provenanceFor(f, f.Value), target)
}
