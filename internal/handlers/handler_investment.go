package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangwaemm/The-Partners-App/internal/core/ledger"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
)

// investmentHandler handles HTTP requests related to side investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.GET("", h.listInvestments)
		investments.GET("/:id", h.getInvestment)
		investments.POST("", middleware.RequireManager(), h.createInvestment)
		investments.PUT("/:id", middleware.RequireManager(), h.updateInvestment)
		investments.POST("/:id/expenses", middleware.RequireManager(), h.recordExpense)
		investments.POST("/:id/profits", middleware.RequireManager(), h.recordProfit)
		investments.DELETE("/:id", middleware.RequireAdmin(), h.deleteInvestment)
	}
}

// listInvestments godoc
// @Summary List investments
// @Description Returns every investment with the aggregate capital, expenses, profits and ROI.
// @Tags investments
// @Produce json
// @Success 200 {object} dto.ListInvestmentsResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	investments, err := h.investmentService.ListInvestments(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list investments")
		return
	}
	c.JSON(http.StatusOK, dto.ListInvestmentsResponse{
		Investments: investments,
		Totals:      ledger.ComputeInvestmentTotals(investments),
	})
}

// getInvestment godoc
// @Summary Get an investment
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} domain.Investment
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{id} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	investment, err := h.investmentService.GetInvestment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve investment")
		return
	}
	c.JSON(http.StatusOK, investment)
}

// createInvestment godoc
// @Summary Create an investment
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment"
// @Success 201 {object} domain.Investment
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	var req dto.CreateInvestmentRequest
	if !bindJSON(c, &req) {
		return
	}
	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create investment")
		return
	}
	c.JSON(http.StatusCreated, investment)
}

// updateInvestment godoc
// @Summary Update an investment
// @Description Changes name, description or creation date. Capital and accumulators are fixed.
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param investment body dto.UpdateInvestmentRequest true "Fields to change"
// @Success 200 {object} domain.Investment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{id} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	var req dto.UpdateInvestmentRequest
	if !bindJSON(c, &req) {
		return
	}
	investment, err := h.investmentService.UpdateInvestment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update investment")
		return
	}
	c.JSON(http.StatusOK, investment)
}

// recordExpense godoc
// @Summary Record an investment expense
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param entry body dto.InvestmentEntryRequest true "Expense"
// @Success 200 {object} domain.Investment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{id}/expenses [post]
func (h *investmentHandler) recordExpense(c *gin.Context) {
	var req dto.InvestmentEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	investment, err := h.investmentService.RecordInvestmentExpense(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusOK, investment)
}

// recordProfit godoc
// @Summary Record an investment profit
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param entry body dto.InvestmentEntryRequest true "Profit"
// @Success 200 {object} domain.Investment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{id}/profits [post]
func (h *investmentHandler) recordProfit(c *gin.Context) {
	var req dto.InvestmentEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	investment, err := h.investmentService.RecordInvestmentProfit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to record profit")
		return
	}
	c.JSON(http.StatusOK, investment)
}

// deleteInvestment godoc
// @Summary Delete an investment
// @Tags investments
// @Param id path string true "Investment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{id} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	if err := h.investmentService.DeleteInvestment(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete investment")
		return
	}
	c.Status(http.StatusNoContent)
}
