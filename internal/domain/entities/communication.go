package entities

import (
	"time"

	"github.com/google/uuid"
)

// ChannelType identifies how a client communication took place
type ChannelType string

const (
	ChannelTypePhone    ChannelType = "phone"
	ChannelTypeInPerson ChannelType = "in_person"
	ChannelTypeEmail    ChannelType = "email"
	ChannelTypeText     ChannelType = "text"
	ChannelTypePortal   ChannelType = "portal"
)

// ParseStatus tracks the extraction lifecycle of a communication's transcript
type ParseStatus string

const (
	ParseStatusPending    ParseStatus = "pending"
	ParseStatusProcessing ParseStatus = "processing"
	ParseStatusDone       ParseStatus = "done"
	ParseStatusFailed     ParseStatus = "failed"
)

// TranscriptTurn is one utterance in an intake call. A turn's index is its
// position in the transcript slice and is never stored separately.
type TranscriptTurn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Communication represents one recorded client contact with its raw transcript
type Communication struct {
	ID              uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientID        uuid.UUID        `json:"client_id" gorm:"type:uuid;not null;index"`
	CaseID          *uuid.UUID       `json:"case_id,omitempty" gorm:"type:uuid;index"`
	Channel         ChannelType      `json:"channel" gorm:"type:varchar(20);default:'phone'"`
	OccurredAt      *time.Time       `json:"occurred_at,omitempty" gorm:"index"`
	DurationSeconds *int             `json:"duration_seconds,omitempty"`
	Summary         string           `json:"summary,omitempty" gorm:"type:text"`
	RawTranscript   []TranscriptTurn `json:"raw_transcript" gorm:"type:jsonb;serializer:json"`
	ParseStatus     ParseStatus      `json:"parse_status" gorm:"type:varchar(20);default:'pending'"`
	ExternalID      string           `json:"external_id,omitempty" gorm:"type:varchar(255)"`
	CreatedAt       time.Time        `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Communication) TableName() string {
	return "communications"
}

// NewCommunication creates a communication holding a raw transcript, pending parse
func NewCommunication(clientID uuid.UUID, caseID *uuid.UUID, channel ChannelType, turns []TranscriptTurn) *Communication {
	return &Communication{
		ID:            uuid.New(),
		ClientID:      clientID,
		CaseID:        caseID,
		Channel:       channel,
		RawTranscript: turns,
		ParseStatus:   ParseStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
