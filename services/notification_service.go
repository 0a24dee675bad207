package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ordering/models"
)

const (
	MsgAddedToCart = "Added to Cart!!Continue Shopping!!"
	MsgItemOrdered = "Item Ordered"
)

// NotificationService stores one-shot messages for a user and hands them out once.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Flash queues a message for userID. tx lets callers enqueue inside their own transaction.
func (s *NotificationService) Flash(ctx context.Context, tx *gorm.DB, userID uint, message string) error {
	if tx == nil {
		tx = s.db
	}
	notif := models.Notification{UserID: userID, Message: message}
	if err := tx.WithContext(ctx).Create(&notif).Error; err != nil {
		return fmt.Errorf("flash message: %w", err)
	}
	return nil
}

// Consume returns the unseen messages of userID, oldest first, and marks them seen.
func (s *NotificationService) Consume(ctx context.Context, userID uint) ([]models.Notification, error) {
	notifs := []models.Notification{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND seen = ?", userID, false).Order("id").Find(&notifs).Error; err != nil {
			return err
		}
		if len(notifs) == 0 {
			return nil
		}
		ids := make([]uint, len(notifs))
		for i, n := range notifs {
			ids[i] = n.ID
		}
		return tx.Model(&models.Notification{}).Where("id IN ?", ids).Update("seen", true).Error
	})
	if err != nil {
		return nil, fmt.Errorf("consume messages: %w", err)
	}
	return notifs, nil
}

// List returns every message of p, newest first.
func (s *NotificationService) List(ctx context.Context, p Principal) ([]models.Notification, error) {
	if err := Authorize(p, 0, Authenticated); err != nil {
		return nil, err
	}
	notifs := []models.Notification{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", p.UserID).Order("id DESC").Find(&notifs).Error; err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}
