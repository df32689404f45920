package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// OtherPartyRepository handles other-party data operations
type OtherPartyRepository struct {
	db *gorm.DB
}

// NewOtherPartyRepository creates a new other-party repository
func NewOtherPartyRepository(db *gorm.DB) *OtherPartyRepository {
	return &OtherPartyRepository{db: db}
}

// GetOrCreate upserts a party on (case, first name, last name, company name)
func (r *OtherPartyRepository) GetOrCreate(ctx context.Context, party *entities.OtherParty) (bool, error) {
	if party == nil {
		return false, errors.New("party cannot be nil")
	}
	var existing entities.OtherParty
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}{
			"case_id":      party.CaseID,
			"first_name":   party.FirstName,
			"last_name":    party.LastName,
			"company_name": party.CompanyName,
		}).
		First(&existing).Error
	if err == nil {
		*party = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(party).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListByCase retrieves all other parties on a case
func (r *OtherPartyRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entities.OtherParty, error) {
	var parties []*entities.OtherParty
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at ASC").
		Find(&parties).Error
	if err != nil {
		return nil, err
	}
	return parties, nil
}
