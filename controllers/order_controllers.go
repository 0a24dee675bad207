package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

const OrderDetailsPath = "/order/details"

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// PlaceOrder checks out the whole cart of the current user.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	p := middlewares.CurrentPrincipal(c)
	ordered, err := oc.Orders.PlaceOrder(c.Request.Context(), p)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := services.MsgItemOrdered
	if ordered == 0 {
		message = "Cart is empty"
	} else {
		utils.InfoLogger.Printf("User %d ordered %d cart items", p.UserID, ordered)
	}
	utils.RespondRedirect(c, http.StatusOK, message, OrderDetailsPath, gin.H{"ordered": ordered})
}

func (oc *OrderController) GetOrderDetails(c *gin.Context) {
	details, err := oc.Orders.ViewOrderDetails(c.Request.Context(), middlewares.CurrentPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order details", details)
}

// MarkDelivered moves one active order line to Delivered.
func (oc *OrderController) MarkDelivered(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p := middlewares.CurrentPrincipal(c)
	row, err := oc.Orders.AdvanceToDelivered(c.Request.Context(), p, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.Printf("Order line %d delivered by admin %d", row.ID, p.UserID)
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Order #%d delivered", row.ID), row)
}
