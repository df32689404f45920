package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexintake/intake-service/internal/domain/entities"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	// Create creates a new client
	Create(ctx context.Context, client *entities.Client) error

	// FindByID retrieves a client by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Client, error)

	// FindByName retrieves clients matching first+last name case-insensitively
	// within a law firm, newest first.
	FindByName(ctx context.Context, lawFirmID uuid.UUID, firstName, lastName string) ([]*entities.Client, error)

	// GetOrCreate finds a client by exact name within a law firm or creates
	// one. Returns the client and whether it was created.
	GetOrCreate(ctx context.Context, lawFirmID uuid.UUID, firstName, lastName string) (*entities.Client, bool, error)
}
