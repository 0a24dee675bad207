package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

type AdminController struct {
	Reports        *services.ReportService
	CurrencySymbol string
}

func NewAdminController(reports *services.ReportService) *AdminController {
	return &AdminController{Reports: reports, CurrencySymbol: "Rp"}
}

type dashboardResponse struct {
	services.Dashboard
	IncomeDisplay *string `json:"income_display"`
}

// GetDeliveredOrders
func (ac *AdminController) GetDeliveredOrders(c *gin.Context) {
	rows, err := ac.Reports.AdminView(c.Request.Context(), middlewares.CurrentPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivered orders", rows)
}

// GetPendingOrders
func (ac *AdminController) GetPendingOrders(c *gin.Context) {
	rows, err := ac.Reports.PendingOrders(c.Request.Context(), middlewares.CurrentPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pending orders", rows)
}

// GetDashboardStats
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	dash, err := ac.Reports.Dashboard(c.Request.Context(), middlewares.CurrentPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dashboardResponse{Dashboard: dash}
	if dash.Income.Valid {
		label := utils.FormatCurrencyLabel(ac.CurrencySymbol, dash.Income.Decimal)
		resp.IncomeDisplay = &label
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", resp)
}
