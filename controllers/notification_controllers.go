package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

type NotificationController struct {
	Notes *services.NotificationService
}

func NewNotificationController(notes *services.NotificationService) *NotificationController {
	return &NotificationController{Notes: notes}
}

// GetMyNotifications lists every message sent to the current user, seen or not.
func (nc *NotificationController) GetMyNotifications(c *gin.Context) {
	notifs, err := nc.Notes.List(c.Request.Context(), middlewares.CurrentPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All notifications", notifs)
}
