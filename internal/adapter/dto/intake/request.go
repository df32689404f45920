package intake

// TurnPayload is one transcript turn in an ingest request
type TurnPayload struct {
	Speaker string `json:"speaker" validate:"required,min=1,max=255"`
	Text    string `json:"text" validate:"required,min=1"`
}

// IngestRequest bootstraps an intake from raw transcript turns
type IngestRequest struct {
	Transcript []TurnPayload `json:"transcript" validate:"required,min=1,dive"`
	LawFirmID  *string       `json:"law_firm_id,omitempty" validate:"omitempty,uuid"`
}

// IngestRecordingRequest bootstraps an intake from a recorded call. The audio
// is transcribed first, then follows the same path as IngestRequest.
type IngestRecordingRequest struct {
	RecordingURL string  `json:"recording_url" validate:"required,url"`
	LawFirmID    *string `json:"law_firm_id,omitempty" validate:"omitempty,uuid"`
}
