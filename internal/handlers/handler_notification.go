package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
)

type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := &notificationHandler{notificationService: notificationService}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:id/read", h.markRead)
		notifications.DELETE("", middleware.RequireManager(), h.clearNotifications)
	}
}

// ListNotificationsResponse wraps the notification log.
type ListNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

// listNotifications godoc
// @Summary List notifications
// @Description Newest first, filtered by the caller's role.
// @Tags notifications
// @Produce json
// @Success 200 {object} ListNotificationsResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), actor)
	if err != nil {
		respondWithError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, ListNotificationsResponse{Notifications: notifications})
}

// markRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	if err := h.notificationService.MarkNotificationAsRead(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to mark notification as read")
		return
	}
	c.Status(http.StatusNoContent)
}

// clearNotifications godoc
// @Summary Clear all notifications
// @Tags notifications
// @Success 204
// @Security BearerAuth
// @Router /notifications [delete]
func (h *notificationHandler) clearNotifications(c *gin.Context) {
	if err := h.notificationService.ClearNotifications(c.Request.Context()); err != nil {
		respondWithError(c, err, "Failed to clear notifications")
		return
	}
	c.Status(http.StatusNoContent)
}
