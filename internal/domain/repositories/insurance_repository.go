package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexintake/intake-service/internal/domain/entities"
)

// InsuranceProviderRepository defines the interface for insurance carrier data access
type InsuranceProviderRepository interface {
	// GetOrCreate upserts a carrier keyed by company name plus the insured
	// party (client or other party). Returns whether a new row was created.
	GetOrCreate(ctx context.Context, carrier *entities.InsuranceProvider) (bool, error)

	// ListByClient retrieves carriers insuring a client
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.InsuranceProvider, error)

	// ListByOtherParty retrieves carriers insuring an other party
	ListByOtherParty(ctx context.Context, otherPartyID uuid.UUID) ([]*entities.InsuranceProvider, error)
}
