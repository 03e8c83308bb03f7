package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "resto_requests/internal/adapter/http/dto/response"
	"resto_requests/internal/usecase"
	"resto_requests/pkg"
)

// NotificationHandler lists and acknowledges notifications.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	notifications, err := h.usecase.ListForUser(c.Request.Context(), actor)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	n, err := h.usecase.MarkRead(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
