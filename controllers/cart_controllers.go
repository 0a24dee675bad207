package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

const CartPath = "/cart"

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// AddToCart adds one more line for the item named by slug.
func (cc *CartController) AddToCart(c *gin.Context) {
	row, err := cc.Cart.AddToCart(c.Request.Context(), middlewares.CurrentPrincipal(c), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondRedirect(c, http.StatusCreated, services.MsgAddedToCart, CartPath, row)
}

func (cc *CartController) GetCart(c *gin.Context) {
	view, err := cc.Cart.ViewCart(c.Request.Context(), middlewares.CurrentPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart", view)
}

func (cc *CartController) DeleteCartItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := cc.Cart.DeleteCartItem(c.Request.Context(), middlewares.CurrentPrincipal(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondRedirect(c, http.StatusOK, "Removed from cart", CartPath, gin.H{"cart_item_id": id})
}
