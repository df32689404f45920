package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexintake/intake-service/internal/domain/entities"
)

// CitationRepository defines the interface for citation provenance data access
type CitationRepository interface {
	// CreateCitation writes a citation owned by a communication
	CreateCitation(ctx context.Context, citation *entities.Citation) error

	// CreateReference writes a typed back-link from a citation to an entity
	CreateReference(ctx context.Context, ref *entities.CitationReference) error

	// ListByCommunication retrieves all citations for a communication
	ListByCommunication(ctx context.Context, communicationID uuid.UUID) ([]*entities.Citation, error)
}
