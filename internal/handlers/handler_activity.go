package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
)

type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: as}
}

func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)

	activities := rg.Group("/activities")
	{
		activities.GET("", h.listActivities)
		activities.POST("", middleware.RequireManager(), h.recordActivity)
		activities.DELETE("/:id", middleware.RequireAdmin(), h.deleteActivity)
	}
}

// listActivities godoc
// @Summary List activities
// @Tags activities
// @Produce json
// @Success 200 {object} dto.ListActivitiesResponse
// @Security BearerAuth
// @Router /activities [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	activities, err := h.activityService.ListActivities(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list activities")
		return
	}
	c.JSON(http.StatusOK, dto.ListActivitiesResponse{Activities: activities})
}

// recordActivity godoc
// @Summary Record an activity
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body dto.RecordActivityRequest true "Activity"
// @Success 201 {object} domain.Activity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Actor not found"
// @Security BearerAuth
// @Router /activities [post]
func (h *activityHandler) recordActivity(c *gin.Context) {
	var req dto.RecordActivityRequest
	if !bindJSON(c, &req) {
		return
	}
	activity, err := h.activityService.RecordActivity(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to record activity")
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// deleteActivity godoc
// @Summary Delete an activity
// @Tags activities
// @Param id path string true "Activity ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (h *activityHandler) deleteActivity(c *gin.Context) {
	if err := h.activityService.DeleteActivity(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete activity")
		return
	}
	c.Status(http.StatusNoContent)
}
