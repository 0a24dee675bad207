package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ordering/models"
)

type OrderDetails struct {
	ActiveOrders []models.CartItem `json:"active_orders"`
	Totals
	DeliveredOrders []models.CartItem     `json:"delivered_orders"`
	Messages        []models.Notification `json:"messages"`
}

type OrderService struct {
	db    *gorm.DB
	notes *NotificationService
	now   func() time.Time
}

func NewOrderService(db *gorm.DB, notes *NotificationService) *OrderService {
	return &OrderService{db: db, notes: notes, now: time.Now}
}

// PlaceOrder moves every cart row of p to Active in a single UPDATE, so rows added
// while it runs are either all in or all out. It returns the number of rows ordered.
func (s *OrderService) PlaceOrder(ctx context.Context, p Principal) (int64, error) {
	if err := Authorize(p, 0, Authenticated); err != nil {
		return 0, err
	}

	var ordered int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND ordered = ?", p.UserID, false).
			Updates(map[string]interface{}{
				"ordered":      true,
				"ordered_date": s.now(),
				"status":       models.StatusActive,
			})
		if res.Error != nil {
			return res.Error
		}
		ordered = res.RowsAffected
		if ordered == 0 {
			return nil
		}
		return s.notes.Flash(ctx, tx, p.UserID, MsgItemOrdered)
	})
	if err != nil {
		return 0, fmt.Errorf("place order for user %d: %w", p.UserID, err)
	}
	return ordered, nil
}

// AdvanceToDelivered marks one Active order row as Delivered.
func (s *OrderService) AdvanceToDelivered(ctx context.Context, p Principal, cartItemID uint) (models.CartItem, error) {
	if err := Authorize(p, 0, AdminOnly); err != nil {
		return models.CartItem{}, err
	}

	db := s.db.WithContext(ctx)
	res := db.Model(&models.CartItem{}).
		Where("id = ? AND ordered = ? AND status = ?", cartItemID, true, models.StatusActive).
		Update("status", models.StatusDelivered)
	if res.Error != nil {
		return models.CartItem{}, fmt.Errorf("deliver order %d: %w", cartItemID, res.Error)
	}

	var row models.CartItem
	if err := notFound(db.Preload("Item").First(&row, cartItemID).Error, "find order"); err != nil {
		return models.CartItem{}, err
	}
	if res.RowsAffected == 0 {
		return models.CartItem{}, ErrInvalidTransition
	}
	return row, nil
}

func (s *OrderService) ViewOrderDetails(ctx context.Context, p Principal) (OrderDetails, error) {
	if err := Authorize(p, 0, Authenticated); err != nil {
		return OrderDetails{}, err
	}

	details := OrderDetails{
		ActiveOrders:    []models.CartItem{},
		DeliveredOrders: []models.CartItem{},
	}
	db := s.db.WithContext(ctx)

	active := withStatus(models.StatusActive)
	if err := db.Preload("Item").Scopes(ownedBy(p.UserID), active, newestFirst).Find(&details.ActiveOrders).Error; err != nil {
		return OrderDetails{}, fmt.Errorf("list active orders: %w", err)
	}
	totals, err := sumTotals(db, ownedBy(p.UserID), active)
	if err != nil {
		return OrderDetails{}, err
	}
	details.Totals = totals

	delivered := withStatus(models.StatusDelivered)
	if err := db.Preload("Item").Scopes(ownedBy(p.UserID), delivered, newestFirst).Find(&details.DeliveredOrders).Error; err != nil {
		return OrderDetails{}, fmt.Errorf("list delivered orders: %w", err)
	}

	if details.Messages, err = s.notes.Consume(ctx, p.UserID); err != nil {
		return OrderDetails{}, err
	}
	return details, nil
}
