package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexintake/intake-service/internal/domain/entities"
)

// DamageRepository defines the interface for damage data access
type DamageRepository interface {
	// GetOrCreate upserts a damage keyed by (case, category). Description and
	// amount act as create-time defaults. Returns whether a new row was created.
	GetOrCreate(ctx context.Context, damage *entities.Damage) (bool, error)

	// ListByCase retrieves all damages on a case
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entities.Damage, error)
}
