package models

import (
	"time"
)

type OrderStatus string

const (
	StatusActive    OrderStatus = "Active"
	StatusDelivered OrderStatus = "Delivered"
)

// LineState is the lifecycle position of a CartItem derived from Ordered and Status.
type LineState string

const (
	StateInCart    LineState = "InCart"
	StateActive    LineState = "Active"
	StateDelivered LineState = "Delivered"
)

// CartItem is a cart entry until Ordered flips, and an order line afterwards.
type CartItem struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	ItemID      uint        `gorm:"not null;index" json:"item_id"`
	Item        Item        `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"item"`
	UserID      uint        `gorm:"not null;index:idx_cart_user_ordered" json:"user_id"`
	User        User        `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Quantity    int         `gorm:"not null;default:1" json:"quantity"`
	Ordered     bool        `gorm:"not null;default:false;index:idx_cart_user_ordered" json:"ordered"`
	OrderedDate *time.Time  `json:"ordered_date"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

func (ci CartItem) State() LineState {
	if !ci.Ordered {
		return StateInCart
	}
	if ci.Status == StatusDelivered {
		return StateDelivered
	}
	return StateActive
}
