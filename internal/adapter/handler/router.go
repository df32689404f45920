package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexintake/intake-service/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	intakeController *IntakeController
	caseController   *CaseController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, intakeController *IntakeController, caseController *CaseController) *Router {
	return &Router{
		cfg:              cfg,
		intakeController: intakeController,
		caseController:   caseController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	rt.setupCommunicationRoutes(v1)
	rt.setupCaseRoutes(v1)
}

// setupCommunicationRoutes configures transcript ingest and parse routes
func (rt *Router) setupCommunicationRoutes(g *echo.Group) {
	commGroup := g.Group("/communications")

	commGroup.POST("/ingest", rt.intakeController.Ingest)
	commGroup.POST("/ingest-recording", rt.intakeController.IngestRecording)
	commGroup.POST("/:id/parse", rt.intakeController.Parse)
}

// setupCaseRoutes configures case-scoped routes
func (rt *Router) setupCaseRoutes(g *echo.Group) {
	caseGroup := g.Group("/cases")

	caseGroup.GET("/:id/communications", rt.caseController.ListCommunications)
	caseGroup.GET("/:id/analyze", rt.caseController.Analyze)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
