package handlers

import (
	"github.com/SAP-F-2025/surveyor-service/internal/services"
	"github.com/SAP-F-2025/surveyor-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	instrumentHandler     *InstrumentHandler
	scenarioHandler       *ScenarioHandler
	administrationHandler *AdministrationHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		instrumentHandler:     NewInstrumentHandler(serviceManager.Instrument(), logger),
		scenarioHandler:       NewScenarioHandler(serviceManager.Scenario(), logger),
		administrationHandler: NewAdministrationHandler(serviceManager.Administration(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		instruments := v1.Group("/instruments")
		{
			instruments.GET("", hm.instrumentHandler.ListInstruments)
			instruments.GET("/:name", hm.instrumentHandler.GetInstrument)
			instruments.POST("/:name/score", hm.instrumentHandler.ScoreInstrument)
		}

		scenarios := v1.Group("/scenarios")
		{
			scenarios.GET("", hm.scenarioHandler.ListScenarios)
			scenarios.GET("/:name", hm.scenarioHandler.GetScenario)
		}

		administrations := v1.Group("/administrations")
		{
			administrations.POST("", hm.administrationHandler.CreateAdministration)
			administrations.GET("", hm.administrationHandler.ListAdministrations)
			administrations.GET("/:id", hm.administrationHandler.GetAdministration)
			administrations.DELETE("/:id", hm.administrationHandler.DeleteAdministration)
			administrations.GET("/:id/export", hm.administrationHandler.ExportAdministration)
		}
	}
}
