package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
)

type contributionHandler struct {
	contributionService portssvc.ContributionSvcFacade
}

func newContributionHandler(cs portssvc.ContributionSvcFacade) *contributionHandler {
	return &contributionHandler{contributionService: cs}
}

func registerContributionRoutes(rg *gin.RouterGroup, contributionService portssvc.ContributionSvcFacade) {
	h := newContributionHandler(contributionService)

	contributions := rg.Group("/contributions")
	{
		contributions.GET("", h.listContributions)
		contributions.POST("", middleware.RequireManager(), h.recordContribution)
		contributions.DELETE("/:id", middleware.RequireAdmin(), h.deleteContribution)
	}
}

// listContributions godoc
// @Summary List contributions
// @Description Members only see their own contributions.
// @Tags contributions
// @Produce json
// @Success 200 {object} dto.ListContributionsResponse
// @Security BearerAuth
// @Router /contributions [get]
func (h *contributionHandler) listContributions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	contributions, err := h.contributionService.ListContributions(c.Request.Context(), actor)
	if err != nil {
		respondWithError(c, err, "Failed to list contributions")
		return
	}
	c.JSON(http.StatusOK, dto.ListContributionsResponse{Contributions: contributions})
}

// recordContribution godoc
// @Summary Record a contribution
// @Description The period end is derived as period start plus 28 days.
// @Tags contributions
// @Accept json
// @Produce json
// @Param contribution body dto.RecordContributionRequest true "Contribution"
// @Success 201 {object} domain.Contribution
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /contributions [post]
func (h *contributionHandler) recordContribution(c *gin.Context) {
	var req dto.RecordContributionRequest
	if !bindJSON(c, &req) {
		return
	}
	contribution, err := h.contributionService.RecordContribution(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to record contribution")
		return
	}
	c.JSON(http.StatusCreated, contribution)
}

// deleteContribution godoc
// @Summary Delete a contribution
// @Tags contributions
// @Param id path string true "Contribution ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contributions/{id} [delete]
func (h *contributionHandler) deleteContribution(c *gin.Context) {
	if err := h.contributionService.DeleteContribution(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete contribution")
		return
	}
	c.Status(http.StatusNoContent)
}
