package entities

import (
	"time"

	"github.com/google/uuid"
)

// OtherParty represents an adverse or at-fault party named on a case.
// Either a first/last name or a company name is populated, not both.
type OtherParty struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CaseID      uuid.UUID `json:"case_id" gorm:"type:uuid;not null;index"`
	FirstName   string    `json:"first_name,omitempty" gorm:"type:varchar(100)"`
	LastName    string    `json:"last_name,omitempty" gorm:"type:varchar(100)"`
	CompanyName string    `json:"company_name,omitempty" gorm:"type:varchar(255)"`
	Role        string    `json:"role,omitempty" gorm:"type:varchar(100)"`
	Phone       string    `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Email       string    `json:"email,omitempty" gorm:"type:varchar(255)"`
	Address     string    `json:"address,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (OtherParty) TableName() string {
	return "other_parties"
}

// DisplayName returns the company name for entities, otherwise the person's name
func (p *OtherParty) DisplayName() string {
	if p.CompanyName != "" {
		return p.CompanyName
	}
	name := p.FirstName
	if name != "" && p.LastName != "" {
		name += " "
	}
	return name + p.LastName
}
