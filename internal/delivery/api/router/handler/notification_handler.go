package handler

import (
	"net/http"
	"strconv"

	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(notificationUC usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// ListNotifications handles GET /api/v1/notifications?limit=&offset=
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be an integer")
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.BadRequest(c, "INVALID_OFFSET", "offset must be an integer")
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}
