package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"type:varchar(150);not null" json:"title"`
	Slug         string          `gorm:"type:varchar(150);uniqueIndex;not null" json:"slug"`
	Description  string          `gorm:"type:text" json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Pieces       int             `gorm:"not null;default:1" json:"pieces"`
	Instructions string          `gorm:"type:text" json:"instructions"`
	Labels       string          `gorm:"type:varchar(50)" json:"labels"`
	LabelColour  string          `gorm:"type:varchar(20)" json:"label_colour"`
	Image        string          `gorm:"type:varchar(255)" json:"image"`
	CreatedByID  uint            `gorm:"not null;index" json:"created_by_id"`
	CreatedBy    User            `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}
