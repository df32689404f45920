package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// CommunicationRepository handles communication data operations
type CommunicationRepository struct {
	db *gorm.DB
}

// NewCommunicationRepository creates a new communication repository
func NewCommunicationRepository(db *gorm.DB) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

// Create creates a new communication
func (r *CommunicationRepository) Create(ctx context.Context, comm *entities.Communication) error {
	if comm == nil {
		return errors.New("communication cannot be nil")
	}
	return r.db.WithContext(ctx).Create(comm).Error
}

// FindByID retrieves a communication by ID
func (r *CommunicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Communication, error) {
	var comm entities.Communication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrRecordNotFound
		}
		return nil, err
	}
	return &comm, nil
}

// ListByCase retrieves all communications attached to a case
func (r *CommunicationRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entities.Communication, error) {
	var comms []*entities.Communication
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at DESC").
		Find(&comms).Error
	if err != nil {
		return nil, err
	}
	return comms, nil
}

// UpdateParseStatus transitions a communication's parse status
func (r *CommunicationRepository) UpdateParseStatus(ctx context.Context, id uuid.UUID, status entities.ParseStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.Communication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"parse_status": status,
			"updated_at":   time.Now(),
		}).Error
}
