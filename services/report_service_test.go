package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-ordering/models"
)

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	pizza := seedItem(t, f.db, f.admin, "pizza", "10.00", 8)
	cola := seedItem(t, f.db, f.admin, "cola", "2.50", 1)
	seedItem(t, f.db, f.admin, "salad", "6.00", 1)
	reports := NewReportService(f.db, [3]uint{pizza.ID, cola.ID, 999})

	for _, slug := range []string{"pizza", "pizza", "cola"} {
		_, err := f.cart.AddToCart(ctx, f.alice, slug)
		require.NoError(t, err)
	}
	for _, slug := range []string{"salad", "cola"} {
		_, err := f.cart.AddToCart(ctx, f.bob, slug)
		require.NoError(t, err)
	}
	_, err := f.orders.PlaceOrder(ctx, f.alice)
	require.NoError(t, err)
	_, err = f.orders.PlaceOrder(ctx, f.bob)
	require.NoError(t, err)

	// still in a cart, excluded everywhere
	_, err = f.cart.AddToCart(ctx, f.alice, "salad")
	require.NoError(t, err)

	pending, err := reports.PendingOrders(ctx, f.admin)
	require.NoError(t, err)
	require.Len(t, pending, 5)
	_, err = f.orders.AdvanceToDelivered(ctx, f.admin, pending[0].ID)
	require.NoError(t, err)
	_, err = f.orders.AdvanceToDelivered(ctx, f.admin, pending[1].ID)
	require.NoError(t, err)

	dash, err := reports.Dashboard(ctx, f.admin)
	require.NoError(t, err)
	assert.EqualValues(t, 3, dash.PendingTotal)
	assert.EqualValues(t, 2, dash.CompletedTotal)
	assert.True(t, decimal.RequireFromString("31.00").Equal(mustDecimal(t, dash.Income)), "income = %s", dash.Income.Decimal)
	assert.EqualValues(t, 2, dash.Count1)
	assert.EqualValues(t, 2, dash.Count2)
	assert.EqualValues(t, 0, dash.Count3)
	assert.Equal(t, [3]uint{pizza.ID, cola.ID, 999}, dash.ItemIDs)
}

func TestDashboardEmpty(t *testing.T) {
	f := newFixture(t)
	reports := NewReportService(f.db, [3]uint{6, 7, 8})

	dash, err := reports.Dashboard(ctx, f.admin)
	require.NoError(t, err)
	assert.Zero(t, dash.PendingTotal)
	assert.Zero(t, dash.CompletedTotal)
	assert.False(t, dash.Income.Valid)
	assert.Zero(t, dash.Count1+dash.Count2+dash.Count3)
}

func TestAdminViewsListAllUsersNewestFirst(t *testing.T) {
	f := newFixture(t)
	f.orders.now = clock()
	reports := NewReportService(f.db, [3]uint{})
	seedItem(t, f.db, f.admin, "soup", "3.00", 1)

	for _, p := range []Principal{f.alice, f.bob, f.alice} {
		_, err := f.cart.AddToCart(ctx, p, "soup")
		require.NoError(t, err)
		_, err = f.orders.PlaceOrder(ctx, p)
		require.NoError(t, err)
	}

	pending, err := reports.PendingOrders(ctx, f.admin)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, f.alice.UserID, pending[0].UserID)
	assert.Equal(t, f.bob.UserID, pending[1].UserID)
	assert.Equal(t, "soup", pending[0].Item.Slug)
	assert.True(t, pending[0].OrderedDate.After(*pending[1].OrderedDate))

	delivered, err := reports.AdminView(ctx, f.admin)
	require.NoError(t, err)
	assert.Empty(t, delivered)

	_, err = f.orders.AdvanceToDelivered(ctx, f.admin, pending[1].ID)
	require.NoError(t, err)

	delivered, err = reports.AdminView(ctx, f.admin)
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, models.StatusDelivered, delivered[0].Status)
}

func TestReportsRequireAdmin(t *testing.T) {
	f := newFixture(t)
	reports := NewReportService(f.db, [3]uint{})

	_, err := reports.Dashboard(ctx, f.alice)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = reports.AdminView(ctx, f.alice)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = reports.PendingOrders(ctx, Principal{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDashboardIncomeIsExactForFractionalPrices(t *testing.T) {
	f := newFixture(t)
	seedItem(t, f.db, f.admin, "mint", "0.10", 1)
	seedItem(t, f.db, f.admin, "lemon", "0.20", 1)
	reports := NewReportService(f.db, [3]uint{})

	_, err := f.cart.AddToCart(ctx, f.alice, "mint")
	require.NoError(t, err)
	_, err = f.cart.AddToCart(ctx, f.alice, "lemon")
	require.NoError(t, err)
	_, err = f.orders.PlaceOrder(ctx, f.alice)
	require.NoError(t, err)

	dash, err := reports.Dashboard(ctx, f.admin)
	require.NoError(t, err)
	assert.Equal(t, "0.3", mustDecimal(t, dash.Income).String())

	details, err := f.orders.ViewOrderDetails(ctx, f.alice)
	require.NoError(t, err)
	assert.Equal(t, "0.3", mustDecimal(t, details.Total).String())
}
