package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// LawFirmRepository handles law firm data operations
type LawFirmRepository struct {
	db *gorm.DB
}

// NewLawFirmRepository creates a new law firm repository
func NewLawFirmRepository(db *gorm.DB) *LawFirmRepository {
	return &LawFirmRepository{db: db}
}

// Create creates a new law firm
func (r *LawFirmRepository) Create(ctx context.Context, firm *entities.LawFirm) error {
	if firm == nil {
		return errors.New("law firm cannot be nil")
	}
	return r.db.WithContext(ctx).Create(firm).Error
}

// FindByID retrieves a law firm by ID
func (r *LawFirmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.LawFirm, error) {
	var firm entities.LawFirm
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&firm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrRecordNotFound
		}
		return nil, err
	}
	return &firm, nil
}

// GetOrCreateByName finds a firm by exact name or creates it
func (r *LawFirmRepository) GetOrCreateByName(ctx context.Context, name string) (*entities.LawFirm, error) {
	var existing entities.LawFirm
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	firm := entities.NewLawFirm(name)
	if err := r.db.WithContext(ctx).Create(firm).Error; err != nil {
		return nil, err
	}
	return firm, nil
}
