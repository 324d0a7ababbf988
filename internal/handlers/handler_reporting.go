package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the dashboard and the manager-only report routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)

	reportingGroup := rg.Group("/reports", middleware.RequireManager())
	{
		reportingGroup.GET("/quarters", h.listQuarters)
		reportingGroup.GET("/quarterly", h.getQuarterlyReport)
		reportingGroup.GET("/export-rows", h.exportRows)
		reportingGroup.POST("/insight", h.generateInsight)
	}
}

// getDashboard godoc
// @Summary Dashboard totals
// @Description Cooperative-wide headline figures derived from the ledger.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardTotals
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	totals, err := h.reportingService.ComputeDashboardTotals(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to compute dashboard")
		return
	}
	c.JSON(http.StatusOK, totals)
}

// listQuarters godoc
// @Summary Available quarters
// @Description The current quarter and the seven before it, newest first.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.QuarterListResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /reports/quarters [get]
func (h *reportingHandler) listQuarters(c *gin.Context) {
	quarters, err := h.reportingService.ListAvailableQuarters(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list quarters")
		return
	}
	c.JSON(http.StatusOK, dto.QuarterListResponse{Quarters: quarters})
}

// getQuarterlyReport godoc
// @Summary Generate quarterly report
// @Description Generates the financial statement for a quarter label such as "Q1 2024"
// @Tags reports
// @Produce json
// @Param quarter query string true "Quarter label, e.g. Q1 2024"
// @Success 200 {object} domain.QuarterlyReport
// @Failure 400 {object} map[string]string "Invalid quarter"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/quarterly [get]
func (h *reportingHandler) getQuarterlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	label := strings.TrimSpace(c.Query("quarter"))
	if label == "" {
		logger.Warn("Quarter missing from query for quarterly report")
		c.JSON(http.StatusBadRequest, gin.H{"error": "quarter query parameter is required"})
		return
	}

	logger.Info("Generating quarterly report", slog.String("quarter", label))
	report, err := h.reportingService.GenerateQuarterlyReport(c.Request.Context(), label)
	if err != nil {
		respondWithError(c, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// exportRows godoc
// @Summary Ledger export rows
// @Description Contributions and loans flattened into Type, Amount, Date, Status rows.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ExportRowsResponse
// @Security BearerAuth
// @Router /reports/export-rows [get]
func (h *reportingHandler) exportRows(c *gin.Context) {
	rows, err := h.reportingService.ExportRows(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to export rows")
		return
	}
	c.JSON(http.StatusOK, dto.ExportRowsResponse{Rows: rows})
}

// generateInsight godoc
// @Summary AI financial insight
// @Description Advisory commentary. Always 200; Available is false when the generator could not answer.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.InsightResponse
// @Security BearerAuth
// @Router /reports/insight [post]
func (h *reportingHandler) generateInsight(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportingService.GenerateInsight(c.Request.Context()))
}
