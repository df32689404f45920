package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// CitationRepository handles citation provenance data operations
type CitationRepository struct {
	db *gorm.DB
}

// NewCitationRepository creates a new citation repository
func NewCitationRepository(db *gorm.DB) *CitationRepository {
	return &CitationRepository{db: db}
}

// CreateCitation writes a citation owned by a communication
func (r *CitationRepository) CreateCitation(ctx context.Context, citation *entities.Citation) error {
	if citation == nil {
		return errors.New("citation cannot be nil")
	}
	return r.db.WithContext(ctx).Create(citation).Error
}

// CreateReference writes a typed back-link from a citation to an entity
func (r *CitationRepository) CreateReference(ctx context.Context, ref *entities.CitationReference) error {
	if ref == nil {
		return errors.New("citation reference cannot be nil")
	}
	return r.db.WithContext(ctx).Create(ref).Error
}

// ListByCommunication retrieves all citations for a communication
func (r *CitationRepository) ListByCommunication(ctx context.Context, communicationID uuid.UUID) ([]*entities.Citation, error) {
	var citations []*entities.Citation
	err := r.db.WithContext(ctx).
		Where("communication_id = ?", communicationID).
		Order("citation_key ASC, confidence_score DESC").
		Find(&citations).Error
	if err != nil {
		return nil, err
	}
	return citations, nil
}
