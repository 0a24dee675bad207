package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ordering/models"
)

type Dashboard struct {
	PendingTotal   int64               `json:"pending_total"`
	CompletedTotal int64               `json:"completed_total"`
	Income         decimal.NullDecimal `json:"income"`
	Count1         int64               `json:"count1"`
	Count2         int64               `json:"count2"`
	Count3         int64               `json:"count3"`
	ItemIDs        [3]uint             `json:"item_ids"`
}

// ReportService serves the admin views. itemIDs are the three catalog entries the
// dashboard counts individually.
type ReportService struct {
	db      *gorm.DB
	itemIDs [3]uint
}

func NewReportService(db *gorm.DB, itemIDs [3]uint) *ReportService {
	return &ReportService{db: db, itemIDs: itemIDs}
}

// AdminView lists delivered orders of all users, newest first.
func (s *ReportService) AdminView(ctx context.Context, p Principal) ([]models.CartItem, error) {
	return s.ordersWithStatus(ctx, p, models.StatusDelivered)
}

// PendingOrders lists active orders of all users, newest first.
func (s *ReportService) PendingOrders(ctx context.Context, p Principal) ([]models.CartItem, error) {
	return s.ordersWithStatus(ctx, p, models.StatusActive)
}

func (s *ReportService) ordersWithStatus(ctx context.Context, p Principal, status models.OrderStatus) ([]models.CartItem, error) {
	if err := Authorize(p, 0, AdminOnly); err != nil {
		return nil, err
	}
	rows := []models.CartItem{}
	if err := s.db.WithContext(ctx).Preload("Item").Scopes(withStatus(status), newestFirst).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s orders: %w", status, err)
	}
	return rows, nil
}

func (s *ReportService) Dashboard(ctx context.Context, p Principal) (Dashboard, error) {
	if err := Authorize(p, 0, AdminOnly); err != nil {
		return Dashboard{}, err
	}

	dash := Dashboard{ItemIDs: s.itemIDs}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.CartItem{}).Scopes(withStatus(models.StatusActive)).Count(&dash.PendingTotal).Error; err != nil {
		return Dashboard{}, fmt.Errorf("count pending orders: %w", err)
	}
	if err := db.Model(&models.CartItem{}).Scopes(withStatus(models.StatusDelivered)).Count(&dash.CompletedTotal).Error; err != nil {
		return Dashboard{}, fmt.Errorf("count completed orders: %w", err)
	}

	counts := []*int64{&dash.Count1, &dash.Count2, &dash.Count3}
	for i, id := range s.itemIDs {
		if err := db.Model(&models.CartItem{}).Scopes(placed).Where("cart_items.item_id = ?", id).Count(counts[i]).Error; err != nil {
			return Dashboard{}, fmt.Errorf("count orders of item %d: %w", id, err)
		}
	}

	totals, err := sumTotals(db, placed)
	if err != nil {
		return Dashboard{}, err
	}
	dash.Income = totals.Total
	return dash, nil
}
