package entities

import (
	"time"

	"github.com/google/uuid"
)

// LawFirm represents a law firm on whose behalf intake calls are handled
type LawFirm struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;index"`
	Address   string    `json:"address,omitempty" gorm:"type:text"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Email     string    `json:"email,omitempty" gorm:"type:varchar(255)"`
	Website   string    `json:"website,omitempty" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (LawFirm) TableName() string {
	return "law_firms"
}

// NewLawFirm creates a new law firm
func NewLawFirm(name string) *LawFirm {
	return &LawFirm{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
