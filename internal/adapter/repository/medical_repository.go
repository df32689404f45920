package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// MedicalFacilityRepository handles medical facility data operations
type MedicalFacilityRepository struct {
	db *gorm.DB
}

// NewMedicalFacilityRepository creates a new medical facility repository
func NewMedicalFacilityRepository(db *gorm.DB) *MedicalFacilityRepository {
	return &MedicalFacilityRepository{db: db}
}

// GetOrCreateByName upserts a facility keyed by name
func (r *MedicalFacilityRepository) GetOrCreateByName(ctx context.Context, name string) (*entities.MedicalFacility, error) {
	var existing entities.MedicalFacility
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	facility := &entities.MedicalFacility{ID: uuid.New(), Name: name}
	if err := r.db.WithContext(ctx).Create(facility).Error; err != nil {
		return nil, err
	}
	return facility, nil
}

// FindByID retrieves a facility by ID
func (r *MedicalFacilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MedicalFacility, error) {
	var facility entities.MedicalFacility
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&facility).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrRecordNotFound
		}
		return nil, err
	}
	return &facility, nil
}

// MedicalProviderRepository handles medical provider data operations
type MedicalProviderRepository struct {
	db *gorm.DB
}

// NewMedicalProviderRepository creates a new medical provider repository
func NewMedicalProviderRepository(db *gorm.DB) *MedicalProviderRepository {
	return &MedicalProviderRepository{db: db}
}

// GetOrCreate upserts a provider on (first name, last name)
func (r *MedicalProviderRepository) GetOrCreate(ctx context.Context, provider *entities.MedicalProvider) (bool, error) {
	if provider == nil {
		return false, errors.New("provider cannot be nil")
	}
	var existing entities.MedicalProvider
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}{
			"first_name": provider.FirstName,
			"last_name":  provider.LastName,
		}).
		First(&existing).Error
	if err == nil {
		*provider = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(provider).Error; err != nil {
		return false, err
	}
	return true, nil
}

// FindByID retrieves a provider by ID
func (r *MedicalProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MedicalProvider, error) {
	var provider entities.MedicalProvider
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrRecordNotFound
		}
		return nil, err
	}
	return &provider, nil
}

// TreatmentRepository handles treatment data operations
type TreatmentRepository struct {
	db *gorm.DB
}

// NewTreatmentRepository creates a new treatment repository
func NewTreatmentRepository(db *gorm.DB) *TreatmentRepository {
	return &TreatmentRepository{db: db}
}

// GetOrCreate upserts a treatment keyed by (case, provider)
func (r *TreatmentRepository) GetOrCreate(ctx context.Context, treatment *entities.Treatment) (bool, error) {
	if treatment == nil {
		return false, errors.New("treatment cannot be nil")
	}
	conds := map[string]interface{}{
		"case_id":     treatment.CaseID,
		"provider_id": treatment.ProviderID,
	}
	var existing entities.Treatment
	err := r.db.WithContext(ctx).Where(conds).First(&existing).Error
	if err == nil {
		*treatment = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(treatment).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListByCase retrieves all treatments on a case
func (r *TreatmentRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entities.Treatment, error) {
	var treatments []*entities.Treatment
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at ASC").
		Find(&treatments).Error
	if err != nil {
		return nil, err
	}
	return treatments, nil
}
