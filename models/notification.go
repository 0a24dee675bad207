package models

import (
	"time"
)

// Notification carries one-shot confirmation messages shown to a user on the next view.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Title     *string   `gorm:"type:varchar(100)" json:"title,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Seen      bool      `gorm:"not null;default:false" json:"seen"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
