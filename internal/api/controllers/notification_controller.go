package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"serenity/internal/services"
	"serenity/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// ListNotifications godoc
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications [get]
func (n *NotificationController) ListNotifications(c *gin.Context) {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	notifications, err := n.notificationService.ListNotifications(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Notifications fetched successfully")
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (n *NotificationController) MarkRead(c *gin.Context) {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid notification id")
		return
	}

	notification, err := n.notificationService.MarkRead(c.Request.Context(), accountID, notificationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notification, "Notification marked as read")
}
