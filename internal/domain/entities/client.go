package entities

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a potential or signed client of a law firm
type Client struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LawFirmID   uuid.UUID  `json:"law_firm_id" gorm:"type:uuid;not null;index"`
	FirstName   string     `json:"first_name" gorm:"type:varchar(100);index:idx_clients_name"`
	LastName    string     `json:"last_name" gorm:"type:varchar(100);index:idx_clients_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	Phone       string     `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Email       string     `json:"email,omitempty" gorm:"type:varchar(255)"`
	Address     string     `json:"address,omitempty" gorm:"type:text"`
	SSNLastFour string     `json:"ssn_last_four,omitempty" gorm:"type:varchar(4)"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client under a law firm
func NewClient(lawFirmID uuid.UUID, firstName, lastName string) *Client {
	return &Client{
		ID:        uuid.New(),
		LawFirmID: lawFirmID,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// FullName returns the client's display name
func (c *Client) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}
