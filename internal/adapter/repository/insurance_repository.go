package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// InsuranceProviderRepository handles insurance carrier data operations
type InsuranceProviderRepository struct {
	db *gorm.DB
}

// NewInsuranceProviderRepository creates a new insurance carrier repository
func NewInsuranceProviderRepository(db *gorm.DB) *InsuranceProviderRepository {
	return &InsuranceProviderRepository{db: db}
}

// GetOrCreate upserts a carrier keyed by company name plus the insured party
func (r *InsuranceProviderRepository) GetOrCreate(ctx context.Context, carrier *entities.InsuranceProvider) (bool, error) {
	if carrier == nil {
		return false, errors.New("carrier cannot be nil")
	}
	conds := map[string]interface{}{
		"company_name":           carrier.CompanyName,
		"insured_client_id":      carrier.InsuredClientID,
		"insured_other_party_id": carrier.InsuredOtherPartyID,
	}
	var existing entities.InsuranceProvider
	err := r.db.WithContext(ctx).Where(conds).First(&existing).Error
	if err == nil {
		*carrier = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(carrier).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListByClient retrieves carriers insuring a client
func (r *InsuranceProviderRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entities.InsuranceProvider, error) {
	var carriers []*entities.InsuranceProvider
	err := r.db.WithContext(ctx).
		Where("insured_client_id = ?", clientID).
		Order("company_name ASC").
		Find(&carriers).Error
	if err != nil {
		return nil, err
	}
	return carriers, nil
}

// ListByOtherParty retrieves carriers insuring an other party
func (r *InsuranceProviderRepository) ListByOtherParty(ctx context.Context, otherPartyID uuid.UUID) ([]*entities.InsuranceProvider, error) {
	var carriers []*entities.InsuranceProvider
	err := r.db.WithContext(ctx).
		Where("insured_other_party_id = ?", otherPartyID).
		Order("company_name ASC").
		Find(&carriers).Error
	if err != nil {
		return nil, err
	}
	return carriers, nil
}
