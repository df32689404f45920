package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// CaseRepository handles case data operations
type CaseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create creates a new case
func (r *CaseRepository) Create(ctx context.Context, c *entities.Case) error {
	if c == nil {
		return errors.New("case cannot be nil")
	}
	return r.db.WithContext(ctx).Create(c).Error
}

// FindByID retrieves a case by ID
func (r *CaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Case, error) {
	var c entities.Case
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrRecordNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListByClient retrieves all cases for a client, newest first
func (r *CaseRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.Case, error) {
	var cases []*entities.Case
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, err
	}
	return cases, nil
}

// Update updates an existing case
func (r *CaseRepository) Update(ctx context.Context, c *entities.Case) error {
	if c == nil {
		return errors.New("case cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.Case{}).
		Where("id = ?", c.ID).
		Save(c).Error
}
