package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexintake/intake-service/internal/domain/entities"
)

// LawFirmRepository defines the interface for law firm data access
type LawFirmRepository interface {
	// Create creates a new law firm
	Create(ctx context.Context, firm *entities.LawFirm) error

	// FindByID retrieves a law firm by ID. Returns entities.ErrRecordNotFound
	// when no firm exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.LawFirm, error)

	// GetOrCreateByName finds a firm by exact name or creates it
	GetOrCreateByName(ctx context.Context, name string) (*entities.LawFirm, error)
}
