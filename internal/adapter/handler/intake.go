package handler

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lexintake/intake-service/errors"
	intakedto "github.com/lexintake/intake-service/internal/adapter/dto/intake"
	"github.com/lexintake/intake-service/internal/domain/entities"
	intakeuse "github.com/lexintake/intake-service/internal/usecase/intake"
)

// Transcriber turns a recorded call into transcript turns
type Transcriber interface {
	TranscribeURL(ctx context.Context, audioURL string) ([]entities.TranscriptTurn, error)
}

// IntakeController handles transcript ingest and parse endpoints
type IntakeController struct {
	svc         *intakeuse.Service
	transcriber Transcriber
	logger      *zap.Logger
}

// NewIntakeController creates a new intake controller
func NewIntakeController(svc *intakeuse.Service, transcriber Transcriber, logger *zap.Logger) *IntakeController {
	return &IntakeController{svc: svc, transcriber: transcriber, logger: logger}
}

// Ingest bootstraps LawFirm, Client, Case and Communication records from raw
// transcript turns and returns the extraction result.
func (ic *IntakeController) Ingest(c echo.Context) error {
	var req intakedto.IngestRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ic.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ic.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	lawFirmID, err := parseOptionalUUID(req.LawFirmID)
	if err != nil {
		return HandleError(ic.logger, c, errors.ErrInvalidArgument("law_firm_id must be a UUID"))
	}

	turns := make([]entities.TranscriptTurn, 0, len(req.Transcript))
	for _, t := range req.Transcript {
		turns = append(turns, entities.TranscriptTurn{Speaker: t.Speaker, Text: t.Text})
	}

	outcome, err := ic.svc.Ingest(c.Request().Context(), turns, lawFirmID)
	if err != nil {
		return HandleError(ic.logger, c, mapIngestError(err))
	}

	return HandleCreated(ic.logger, c, ingestResponse(outcome))
}

// IngestRecording transcribes a recorded intake call and runs the same
// bootstrap ingest as Ingest.
func (ic *IntakeController) IngestRecording(c echo.Context) error {
	var req intakedto.IngestRecordingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ic.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ic.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	lawFirmID, err := parseOptionalUUID(req.LawFirmID)
	if err != nil {
		return HandleError(ic.logger, c, errors.ErrInvalidArgument("law_firm_id must be a UUID"))
	}

	turns, err := ic.transcriber.TranscribeURL(c.Request().Context(), req.RecordingURL)
	if err != nil {
		return HandleError(ic.logger, c, errors.ErrTranscriptionFailed(err))
	}

	outcome, err := ic.svc.Ingest(c.Request().Context(), turns, lawFirmID)
	if err != nil {
		return HandleError(ic.logger, c, mapIngestError(err))
	}

	return HandleCreated(ic.logger, c, ingestResponse(outcome))
}

// Parse runs extraction over a stored communication's transcript and persists
// the downstream records when the communication belongs to a case.
func (ic *IntakeController) Parse(c echo.Context) error {
	communicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(ic.logger, c, errors.ErrInvalidArgument("communication id must be a UUID"))
	}

	result, err := ic.svc.Parse(c.Request().Context(), communicationID)
	if err != nil {
		return HandleError(ic.logger, c, err)
	}

	return HandleSuccess(ic.logger, c, intakedto.ParseResponse{Result: result})
}

func ingestResponse(outcome *intakeuse.IngestOutcome) intakedto.IngestResponse {
	return intakedto.IngestResponse{
		Matched:         outcome.Matched,
		LawFirmID:       outcome.LawFirmID,
		ClientID:        outcome.ClientID,
		CaseID:          outcome.CaseID,
		CommunicationID: outcome.CommunicationID,
		Result:          outcome.Result,
	}
}

func mapIngestError(err error) error {
	if stdErrors.Is(err, entities.ErrEmptyTranscript) {
		return errors.ErrInvalidArgument("transcript has no turns")
	}
	return err
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
