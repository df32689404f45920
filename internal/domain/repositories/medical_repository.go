package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexintake/intake-service/internal/domain/entities"
)

// MedicalFacilityRepository defines the interface for medical facility data access
type MedicalFacilityRepository interface {
	// GetOrCreateByName upserts a facility keyed by name
	GetOrCreateByName(ctx context.Context, name string) (*entities.MedicalFacility, error)

	// FindByID retrieves a facility by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MedicalFacility, error)
}

// MedicalProviderRepository defines the interface for medical provider data access
type MedicalProviderRepository interface {
	// GetOrCreate upserts a provider on its natural key (first + last name).
	// Facility and specialty on the passed entity act as create-time defaults.
	// Returns whether a new row was created.
	GetOrCreate(ctx context.Context, provider *entities.MedicalProvider) (bool, error)

	// FindByID retrieves a provider by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MedicalProvider, error)
}

// TreatmentRepository defines the interface for treatment data access
type TreatmentRepository interface {
	// GetOrCreate upserts a treatment keyed by (case, provider). Treatment
	// details act as create-time defaults; repeated parses with different
	// details keep the first row.
	GetOrCreate(ctx context.Context, treatment *entities.Treatment) (bool, error)

	// ListByCase retrieves all treatments on a case
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entities.Treatment, error)
}
