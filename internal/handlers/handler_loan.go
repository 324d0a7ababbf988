package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.GET("/:id", h.getLoan)
		loans.GET("/:id/accrual", h.getAccrual)
		loans.POST("", middleware.RequireManager(), h.issueLoan)
		loans.POST("/:id/payments", middleware.RequireManager(), h.recordPayment)
		loans.DELETE("/:id", middleware.RequireAdmin(), h.deleteLoan)
	}
}

// listLoans godoc
// @Summary List loans
// @Description Members only see their own loans.
// @Tags loans
// @Produce json
// @Success 200 {object} dto.ListLoansResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	loans, err := h.loanService.ListLoans(c.Request.Context(), actor)
	if err != nil {
		respondWithError(c, err, "Failed to list loans")
		return
	}
	c.JSON(http.StatusOK, dto.ListLoansResponse{Loans: loans})
}

// getLoan godoc
// @Summary Get a loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} domain.Loan
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	loan, err := h.loanService.GetLoan(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve loan")
		return
	}
	c.JSON(http.StatusOK, loan)
}

// getAccrual godoc
// @Summary Loan interest accrual
// @Description Advisory months elapsed, paid and outstanding, with the suggested interest payment.
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Param asOf query string false "Reference date (YYYY-MM-DD)" default(today)
// @Success 200 {object} domain.LoanAccrual
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/accrual [get]
func (h *loanHandler) getAccrual(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var ref domain.Date
	if asOf := c.Query("asOf"); asOf != "" {
		parsed, err := domain.ParseDate(asOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	accrual, err := h.loanService.LoanAccrual(c.Request.Context(), actor, c.Param("id"), ref)
	if err != nil {
		respondWithError(c, err, "Failed to compute accrual")
		return
	}
	c.JSON(http.StatusOK, accrual)
}

// issueLoan godoc
// @Summary Issue a loan
// @Description Prices the loan with the current interest rate setting. Pricing never changes afterwards.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.IssueLoanRequest true "Loan details"
// @Success 201 {object} domain.Loan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) issueLoan(c *gin.Context) {
	var req dto.IssueLoanRequest
	if !bindJSON(c, &req) {
		return
	}
	loan, err := h.loanService.IssueLoan(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to issue loan")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Loan issued",
		slog.String("loan_id", loan.ID), slog.String("principal", loan.Principal.String()))
	c.JSON(http.StatusCreated, loan)
}

// recordPayment godoc
// @Summary Record a loan payment
// @Description Applies a principal/interest split. The sum must be positive.
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param payment body dto.RecordLoanPaymentRequest true "Payment split"
// @Success 200 {object} domain.Loan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/payments [post]
func (h *loanHandler) recordPayment(c *gin.Context) {
	var req dto.RecordLoanPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	loan, err := h.loanService.RecordLoanPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, loan)
}

// deleteLoan godoc
// @Summary Delete a loan
// @Tags loans
// @Param id path string true "Loan ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id} [delete]
func (h *loanHandler) deleteLoan(c *gin.Context) {
	if err := h.loanService.DeleteLoan(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete loan")
		return
	}
	c.Status(http.StatusNoContent)
}
