package handler

import (
	"context"
	"net/http"
	"strconv"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type NotificationServiceInterface interface {
	List(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

type NotificationHandler struct {
	service NotificationServiceInterface
}

func NewNotificationHandler(service NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListHandler handles GET /me/notifications?unread=true
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	userID, ok := helpers.RequireUser(c, "NotificationListHandler")
	if !ok {
		return
	}

	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	list, err := h.service.List(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		helpers.RespondError(c, "NotificationListHandler", err, map[string]any{"user_id": userID})
		return
	}
	if list == nil {
		list = []model.Notification{}
	}
	utils.JSONResponse(c, http.StatusOK, list, "notifications retrieved successfully")
}

// MarkReadHandler handles POST /me/notifications/:id/read
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	userID, ok := helpers.RequireUser(c, "NotificationMarkReadHandler")
	if !ok {
		return
	}

	notificationID := c.Param("id")
	if err := h.service.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		helpers.RespondError(c, "NotificationMarkReadHandler", err, map[string]any{
			"user_id":         userID,
			"notification_id": notificationID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"notification_id": notificationID}, "notification marked as read")
}

// MarkAllReadHandler handles POST /me/notifications/read-all
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	userID, ok := helpers.RequireUser(c, "NotificationMarkAllReadHandler")
	if !ok {
		return
	}

	updated, err := h.service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "NotificationMarkAllReadHandler", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"updated": updated}, "notifications marked as read")
}
