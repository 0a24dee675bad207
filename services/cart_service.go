package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ordering/models"
)

type CartView struct {
	CartItems []models.CartItem `json:"cart_items"`
	Totals
	Messages []models.Notification `json:"messages"`
}

type CartService struct {
	db    *gorm.DB
	notes *NotificationService
}

func NewCartService(db *gorm.DB, notes *NotificationService) *CartService {
	return &CartService{db: db, notes: notes}
}

// AddToCart always inserts a new row; repeated adds of the same item are separate lines.
func (s *CartService) AddToCart(ctx context.Context, p Principal, slug string) (models.CartItem, error) {
	if err := Authorize(p, 0, Authenticated); err != nil {
		return models.CartItem{}, err
	}

	var item models.Item
	if err := notFound(s.db.WithContext(ctx).Where("slug = ?", slug).First(&item).Error, "find item by slug"); err != nil {
		return models.CartItem{}, err
	}

	row := models.CartItem{
		ItemID:   item.ID,
		UserID:   p.UserID,
		Quantity: 1,
		Ordered:  false,
		Status:   models.StatusActive,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return s.notes.Flash(ctx, tx, p.UserID, MsgAddedToCart)
	})
	if err != nil {
		return models.CartItem{}, fmt.Errorf("add %q to cart: %w", slug, err)
	}

	row.Item = item
	return row, nil
}

func (s *CartService) ViewCart(ctx context.Context, p Principal) (CartView, error) {
	if err := Authorize(p, 0, Authenticated); err != nil {
		return CartView{}, err
	}

	view := CartView{CartItems: []models.CartItem{}}
	db := s.db.WithContext(ctx)
	if err := db.Preload("Item").Scopes(ownedBy(p.UserID), inCart).Order("cart_items.id").Find(&view.CartItems).Error; err != nil {
		return CartView{}, fmt.Errorf("list cart: %w", err)
	}

	totals, err := sumTotals(db, ownedBy(p.UserID), inCart)
	if err != nil {
		return CartView{}, err
	}
	view.Totals = totals

	if view.Messages, err = s.notes.Consume(ctx, p.UserID); err != nil {
		return CartView{}, err
	}
	return view, nil
}

func (s *CartService) DeleteCartItem(ctx context.Context, p Principal, cartItemID uint) error {
	if err := Authorize(p, 0, Authenticated); err != nil {
		return err
	}

	var row models.CartItem
	if err := notFound(s.db.WithContext(ctx).First(&row, cartItemID).Error, "find cart item"); err != nil {
		return err
	}
	if err := Authorize(p, row.UserID, OwnerOnly); err != nil {
		return err
	}
	if row.Ordered {
		return NewValidationError("cart_item", "order already placed")
	}

	res := s.db.WithContext(ctx).Where("ordered = ?", false).Delete(&row)
	if res.Error != nil {
		return fmt.Errorf("delete cart item %d: %w", cartItemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return NewValidationError("cart_item", "order already placed")
	}
	return nil
}
