package entities

import (
	"time"

	"github.com/google/uuid"
)

// DamageCategory classifies a claimed damage
type DamageCategory string

const (
	DamageCategoryMedical         DamageCategory = "medical"
	DamageCategoryLostWages       DamageCategory = "lost_wages"
	DamageCategoryPainSuffering   DamageCategory = "pain_suffering"
	DamageCategoryProperty        DamageCategory = "property"
	DamageCategoryFutureMedical   DamageCategory = "future_medical"
	DamageCategoryFutureLostWages DamageCategory = "future_lost_wages"
	DamageCategoryOther           DamageCategory = "other"
)

// Damage represents a claimed damage item on a case
type Damage struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CaseID          uuid.UUID      `json:"case_id" gorm:"type:uuid;not null;index"`
	Category        DamageCategory `json:"category" gorm:"type:varchar(30);default:'other';index"`
	Description     string         `json:"description,omitempty" gorm:"type:text"`
	EstimatedAmount *float64       `json:"estimated_amount,omitempty" gorm:"type:numeric(14,2)"`
	Documented      bool           `json:"documented" gorm:"default:false"`
	Notes           string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Damage) TableName() string {
	return "damages"
}
