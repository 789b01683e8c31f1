package api

import (
	"errors"
	"net/http"

	reqdto "petcare-booking/internal/handler/dto/request"
	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

// @Summary Get notification permission
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PermissionResponse
// @Router /notifications/permission [get]
func (h *NotificationHandler) GetPermission(c *gin.Context) {
	view := h.notificationUseCase.GetPermission(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromPermissionView(view))
}

// @Summary Set notification permission
// @Description Record the client's permission response; granting arms pending reminders
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PermissionRequest true "Permission state"
// @Success 200 {object} resdto.PermissionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /notifications/permission [put]
func (h *NotificationHandler) SetPermission(c *gin.Context) {
	var req reqdto.PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.notificationUseCase.SetPermission(c.Request.Context(), req.Permission)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPermission):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid permission value",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPermissionView(view))
}
