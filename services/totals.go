package services

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ordering/models"
)

// Totals are SQL aggregates over a set of cart rows. Each field is null when the set is empty.
// Price is summed once per row, quantity is not applied.
type Totals struct {
	Total       decimal.NullDecimal `json:"total"`
	Count       *int64              `json:"count"`
	TotalPieces *int64              `json:"total_pieces"`
}

// sumTotals aggregates the rows selected by scopes. Scopes must qualify their columns with cart_items.
func sumTotals(db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) (Totals, error) {
	var (
		totals Totals
		count  sql.NullInt64
		pieces sql.NullInt64
	)

	row := db.Model(&models.CartItem{}).
		Scopes(scopes...).
		Joins("JOIN items ON items.id = cart_items.item_id").
		Select("SUM(items.price), SUM(cart_items.quantity), SUM(items.pieces)").
		Row()
	if err := row.Scan(&totals.Total, &count, &pieces); err != nil {
		return Totals{}, fmt.Errorf("sum cart totals: %w", err)
	}
	// sqlite sums REAL values; prices carry at most two decimals, so rounding is exact.
	if totals.Total.Valid {
		totals.Total.Decimal = totals.Total.Decimal.Round(2)
	}

	if count.Valid {
		totals.Count = &count.Int64
	}
	if pieces.Valid {
		totals.TotalPieces = &pieces.Int64
	}
	return totals, nil
}

func ownedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("cart_items.user_id = ?", userID)
	}
}

func inCart(db *gorm.DB) *gorm.DB {
	return db.Where("cart_items.ordered = ?", false)
}

func withStatus(status models.OrderStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("cart_items.ordered = ? AND cart_items.status = ?", true, status)
	}
}

func placed(db *gorm.DB) *gorm.DB {
	return db.Where("cart_items.ordered = ?", true)
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("cart_items.ordered_date DESC").Order("cart_items.id DESC")
}
