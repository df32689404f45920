package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexintake/intake-service/internal/domain/entities"
)

// CommunicationRepository defines the interface for communication data access
type CommunicationRepository interface {
	// Create creates a new communication
	Create(ctx context.Context, comm *entities.Communication) error

	// FindByID retrieves a communication by ID. Returns
	// entities.ErrRecordNotFound when no communication exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Communication, error)

	// ListByCase retrieves all communications attached to a case
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entities.Communication, error)

	// UpdateParseStatus transitions a communication's parse status
	UpdateParseStatus(ctx context.Context, id uuid.UUID, status entities.ParseStatus) error
}
