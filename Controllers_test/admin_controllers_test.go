package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-ordering/models"
)

type dashboard struct {
	PendingTotal   int64   `json:"pending_total"`
	CompletedTotal int64   `json:"completed_total"`
	Income         *string `json:"income"`
	IncomeDisplay  *string `json:"income_display"`
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	app := newTestApp(t)
	admin, _ := app.user("admin@example.com", models.RoleAdmin)
	alice, customer := app.user("alice@example.com", models.RoleCustomer)
	app.item(admin, "soup", "3.00", 1)

	var row models.CartItem
	decode(t, app.get("/cart/add/soup", customer), &row)
	require.Equal(t, http.StatusOK, app.postJSON("/order", customer, nil).Code)
	deliver := fmt.Sprintf("/admin/orders/%d/deliver", row.ID)

	for _, path := range []string{"/admin/view", "/admin/items", "/admin/pending", "/admin/dashboard", "/item_list"} {
		assert.Equal(t, http.StatusUnauthorized, app.get(path, "").Code, path)
		assert.Equal(t, http.StatusForbidden, app.get(path, customer).Code, path)
	}
	assert.Equal(t, http.StatusUnauthorized, app.patch(deliver, "").Code)
	assert.Equal(t, http.StatusForbidden, app.patch(deliver, customer).Code)

	var stored models.CartItem
	require.NoError(t, app.db.First(&stored, row.ID).Error)
	assert.Equal(t, alice.ID, stored.UserID)
	assert.Equal(t, models.StatusActive, stored.Status, "rejected requests leave the order active")
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t)
	admin, adminToken := app.user("admin@example.com", models.RoleAdmin)
	_, alice := app.user("alice@example.com", models.RoleCustomer)
	app.item(admin, "pizza", "15000.50", 8)

	w := app.get("/admin/dashboard", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var empty dashboard
	decode(t, w, &empty)
	assert.Nil(t, empty.Income)
	assert.Nil(t, empty.IncomeDisplay)

	for i := 0; i < 3; i++ {
		app.get("/cart/add/pizza", alice)
	}
	require.Equal(t, http.StatusOK, app.postJSON("/order", alice, nil).Code)

	w = app.get("/admin/pending", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var pending []models.CartItem
	decode(t, w, &pending)
	require.Len(t, pending, 3)
	require.Equal(t, http.StatusOK, app.patch(fmt.Sprintf("/admin/orders/%d/deliver", pending[0].ID), adminToken).Code)

	w = app.get("/admin/view", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var delivered []models.CartItem
	decode(t, w, &delivered)
	require.Len(t, delivered, 1)
	assert.Equal(t, pending[0].ID, delivered[0].ID)

	w = app.get("/admin/dashboard", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var dash dashboard
	decode(t, w, &dash)
	assert.EqualValues(t, 2, dash.PendingTotal)
	assert.EqualValues(t, 1, dash.CompletedTotal)
	require.NotNil(t, dash.IncomeDisplay)
	assert.Equal(t, "Rp 45.001,50", *dash.IncomeDisplay)
}
