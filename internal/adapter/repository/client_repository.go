package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// ClientRepository handles client data operations
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client
func (r *ClientRepository) Create(ctx context.Context, client *entities.Client) error {
	if client == nil {
		return errors.New("client cannot be nil")
	}
	return r.db.WithContext(ctx).Create(client).Error
}

// FindByID retrieves a client by ID
func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	var client entities.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrRecordNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByName retrieves clients matching first+last name case-insensitively
// within a law firm, newest first
func (r *ClientRepository) FindByName(ctx context.Context, lawFirmID uuid.UUID, firstName, lastName string) ([]*entities.Client, error) {
	var clients []*entities.Client
	err := r.db.WithContext(ctx).
		Where("law_firm_id = ? AND LOWER(first_name) = LOWER(?) AND LOWER(last_name) = LOWER(?)",
			lawFirmID, firstName, lastName).
		Order("created_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// GetOrCreate finds a client by exact name within a law firm or creates one
func (r *ClientRepository) GetOrCreate(ctx context.Context, lawFirmID uuid.UUID, firstName, lastName string) (*entities.Client, bool, error) {
	var existing entities.Client
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}{
			"law_firm_id": lawFirmID,
			"first_name":  firstName,
			"last_name":   lastName,
		}).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	client := entities.NewClient(lawFirmID, firstName, lastName)
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, false, err
	}
	return client, true, nil
}
