package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/surveyor-service/internal/services"
	"github.com/SAP-F-2025/surveyor-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ScenarioHandler struct {
	BaseHandler
	scenarioService services.ScenarioService
}

func NewScenarioHandler(scenarioService services.ScenarioService, logger utils.Logger) *ScenarioHandler {
	return &ScenarioHandler{
		BaseHandler:     NewBaseHandler(logger),
		scenarioService: scenarioService,
	}
}

func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, h.scenarioService.List(c.Request.Context()))
}

func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	name := ParseStringIDParam(c, "name")
	if name == "" {
		return
	}

	scenario, err := h.scenarioService.Get(c.Request.Context(), name)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, scenario)
}
