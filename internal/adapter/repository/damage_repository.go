package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// DamageRepository handles damage data operations
type DamageRepository struct {
	db *gorm.DB
}

// NewDamageRepository creates a new damage repository
func NewDamageRepository(db *gorm.DB) *DamageRepository {
	return &DamageRepository{db: db}
}

// GetOrCreate upserts a damage keyed by (case, category)
func (r *DamageRepository) GetOrCreate(ctx context.Context, damage *entities.Damage) (bool, error) {
	if damage == nil {
		return false, errors.New("damage cannot be nil")
	}
	var existing entities.Damage
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}{
			"case_id":  damage.CaseID,
			"category": damage.Category,
		}).
		First(&existing).Error
	if err == nil {
		*damage = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(damage).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListByCase retrieves all damages on a case
func (r *DamageRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entities.Damage, error) {
	var damages []*entities.Damage
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("category ASC").
		Find(&damages).Error
	if err != nil {
		return nil, err
	}
	return damages, nil
}
