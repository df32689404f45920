package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexintake/intake-service/internal/domain/entities"
)

// OtherPartyRepository defines the interface for other-party data access
type OtherPartyRepository interface {
	// GetOrCreate upserts a party on its natural key (case + first/last name +
	// company name). The passed entity supplies defaults for a create; on a
	// key match it is overwritten with the stored row. Returns whether a new
	// row was created.
	GetOrCreate(ctx context.Context, party *entities.OtherParty) (bool, error)

	// ListByCase retrieves all other parties on a case
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entities.OtherParty, error)
}
