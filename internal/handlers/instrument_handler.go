package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/SAP-F-2025/surveyor-service/internal/services"
	"github.com/SAP-F-2025/surveyor-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type InstrumentHandler struct {
	BaseHandler
	instrumentService services.InstrumentService
}

func NewInstrumentHandler(instrumentService services.InstrumentService, logger utils.Logger) *InstrumentHandler {
	return &InstrumentHandler{
		BaseHandler:       NewBaseHandler(logger),
		instrumentService: instrumentService,
	}
}

// ListInstruments lists the built-in instruments
// @Summary List instruments
// @Tags instruments
// @Produce json
// @Success 200 {array} models.InstrumentInfo
// @Router /instruments [get]
func (h *InstrumentHandler) ListInstruments(c *gin.Context) {
	c.JSON(http.StatusOK, h.instrumentService.List(c.Request.Context()))
}

// GetInstrument returns one instrument with its questions and choices
// @Summary Get instrument
// @Tags instruments
// @Produce json
// @Param name path string true "Instrument name"
// @Success 200 {object} models.InstrumentInfo
// @Failure 404 {object} ErrorResponse
// @Router /instruments/{name} [get]
func (h *InstrumentHandler) GetInstrument(c *gin.Context) {
	name := ParseStringIDParam(c, "name")
	if name == "" {
		return
	}

	info, err := h.instrumentService.Get(c.Request.Context(), name)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// ScoreInstrument scores one answer per question without storing anything
// @Summary Score answers
// @Tags instruments
// @Accept json
// @Produce json
// @Param name path string true "Instrument name"
// @Param answers body models.ScoreRequest true "One answer per question"
// @Success 200 {object} models.ScoreResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /instruments/{name}/score [post]
func (h *InstrumentHandler) ScoreInstrument(c *gin.Context) {
	name := ParseStringIDParam(c, "name")
	if name == "" {
		return
	}

	var req models.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.instrumentService.Score(c.Request.Context(), name, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
