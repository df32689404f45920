package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexintake/intake-service/internal/domain/entities"
)

// CaseRepository defines the interface for case data access
type CaseRepository interface {
	// Create creates a new case
	Create(ctx context.Context, c *entities.Case) error

	// FindByID retrieves a case by ID. Returns entities.ErrRecordNotFound
	// when no case exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Case, error)

	// ListByClient retrieves all cases for a client, newest first
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.Case, error)

	// Update updates an existing case
	Update(ctx context.Context, c *entities.Case) error
}
