package handler

import (
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lexintake/intake-service/errors"
	"github.com/lexintake/intake-service/internal/domain/entities"
	"github.com/lexintake/intake-service/internal/domain/repositories"
	"github.com/lexintake/intake-service/internal/usecase/report"
)

// CaseController handles case-scoped read and analysis endpoints
type CaseController struct {
	cases          repositories.CaseRepository
	communications repositories.CommunicationRepository
	analyzer       *report.Analyzer
	logger         *zap.Logger
}

// NewCaseController creates a new case controller
func NewCaseController(cases repositories.CaseRepository, communications repositories.CommunicationRepository, analyzer *report.Analyzer, logger *zap.Logger) *CaseController {
	return &CaseController{
		cases:          cases,
		communications: communications,
		analyzer:       analyzer,
		logger:         logger,
	}
}

// ListCommunications returns all communications attached to a case
func (cc *CaseController) ListCommunications(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(cc.logger, c, errors.ErrInvalidArgument("case id must be a UUID"))
	}

	if _, err := cc.cases.FindByID(c.Request().Context(), caseID); err != nil {
		if stdErrors.Is(err, entities.ErrRecordNotFound) {
			return HandleError(cc.logger, c, errors.ErrNotFound("case"))
		}
		return HandleError(cc.logger, c, errors.ErrDBQueryFailed(err))
	}

	comms, err := cc.communications.ListByCase(c.Request().Context(), caseID)
	if err != nil {
		return HandleError(cc.logger, c, errors.ErrDBQueryFailed(err))
	}

	return HandleSuccess(cc.logger, c, comms)
}

// Analyze produces the five-section case evaluation report
func (cc *CaseController) Analyze(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(cc.logger, c, errors.ErrInvalidArgument("case id must be a UUID"))
	}

	analysis, err := cc.analyzer.AnalyzeCase(c.Request().Context(), caseID)
	if err != nil {
		return HandleError(cc.logger, c, err)
	}

	return HandleSuccess(cc.logger, c, analysis)
}
