package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/SAP-F-2025/surveyor-service/internal/repositories"
	"github.com/SAP-F-2025/surveyor-service/internal/services"
	"github.com/SAP-F-2025/surveyor-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type AdministrationHandler struct {
	BaseHandler
	administrationService services.AdministrationService
}

func NewAdministrationHandler(administrationService services.AdministrationService, logger utils.Logger) *AdministrationHandler {
	return &AdministrationHandler{
		BaseHandler:           NewBaseHandler(logger),
		administrationService: administrationService,
	}
}

// CreateAdministration runs a scripted administration and stores it
// @Summary Run administration
// @Description Administers the requested instruments to the roster (or the scenario's agents) using the scripted answers
// @Tags administrations
// @Accept json
// @Produce json
// @Param administration body models.AdministrationRequest true "Administration request"
// @Success 201 {object} models.AdministrationRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /administrations [post]
func (h *AdministrationHandler) CreateAdministration(c *gin.Context) {
	var req models.AdministrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Running administration", "label", req.Label, "instruments", req.Instruments)

	record, err := h.administrationService.RunScripted(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListAdministrations lists stored administrations
// @Summary List administrations
// @Tags administrations
// @Produce json
// @Param label query string false "Label substring"
// @Param scenario query string false "Scenario name"
// @Param status query string false "completed or partial"
// @Param date_from query string false "RFC3339 lower bound on created_at"
// @Param date_to query string false "RFC3339 upper bound on created_at"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Param sort_by query string false "label or created_at"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /administrations [get]
func (h *AdministrationHandler) ListAdministrations(c *gin.Context) {
	limit, ok := parseIntQuery(c, "limit", repositories.DefaultLimit)
	if !ok {
		return
	}
	offset, ok := parseIntQuery(c, "offset", 0)
	if !ok {
		return
	}

	filters := repositories.AdministrationFilters{
		Label:     c.Query("label"),
		Scenario:  c.Query("scenario"),
		Limit:     limit,
		Offset:    offset,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if status := c.Query("status"); status != "" {
		s := models.AdministrationStatus(strings.ToLower(status))
		if s != models.AdministrationCompleted && s != models.AdministrationPartial {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid status",
				Details: "must be one of: completed, partial",
			})
			return
		}
		filters.Status = &s
	}
	for key, target := range map[string]**time.Time{"date_from": &filters.DateFrom, "date_to": &filters.DateTo} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid " + key,
				Details: err.Error(),
			})
			return
		}
		*target = &t
	}

	records, total, err := h.administrationService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Data:   records,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// GetAdministration returns a stored administration
// @Summary Get administration
// @Tags administrations
// @Produce json
// @Param id path string true "Administration ID"
// @Success 200 {object} models.AdministrationRecord
// @Failure 404 {object} ErrorResponse
// @Router /administrations/{id} [get]
func (h *AdministrationHandler) GetAdministration(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	record, err := h.administrationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *AdministrationHandler) DeleteAdministration(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	if err := h.administrationService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportAdministration downloads the results of an administration
// @Summary Export administration
// @Tags administrations
// @Produce text/csv,application/json,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Administration ID"
// @Param format query string false "csv, json or xlsx (default csv)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /administrations/{id}/export [get]
func (h *AdministrationHandler) ExportAdministration(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}
	format := models.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(models.ExportCSV))))

	data, contentType, err := h.administrationService.Export(c.Request.Context(), id, format)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+id+`_results.`+string(format)+`"`)
	c.Data(http.StatusOK, contentType, data)
}
