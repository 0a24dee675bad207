package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/models"
)

var ctx = context.Background()

// setupTestDB opens a private in-memory sqlite database with the schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(config.SQLiteDSN("file:"+uuid.NewString()+"?mode=memory&cache=shared")), &gorm.Config{
		TranslateError: true,
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}, &models.CartItem{}, &models.Notification{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) Principal {
	t.Helper()
	user := models.User{Name: email, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return Principal{UserID: user.ID, Role: user.Role}
}

func seedItem(t *testing.T, db *gorm.DB, creator Principal, slug, price string, pieces int) models.Item {
	t.Helper()
	item := models.Item{
		Title:       slug,
		Slug:        slug,
		Price:       decimal.RequireFromString(price),
		Pieces:      pieces,
		CreatedByID: creator.UserID,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

type fixture struct {
	db      *gorm.DB
	notes   *NotificationService
	catalog *CatalogService
	cart    *CartService
	orders  *OrderService
	admin   Principal
	alice   Principal
	bob     Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)
	notes := NewNotificationService(db)
	return &fixture{
		db:      db,
		notes:   notes,
		catalog: NewCatalogService(db),
		cart:    NewCartService(db, notes),
		orders:  NewOrderService(db, notes),
		admin:   seedUser(t, db, "admin@example.com", models.RoleAdmin),
		alice:   seedUser(t, db, "alice@example.com", models.RoleCustomer),
		bob:     seedUser(t, db, "bob@example.com", models.RoleCustomer),
	}
}

// clock returns successive minutes starting at a fixed instant.
func clock() func() time.Time {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var n int
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
}

func intPtr(n int) *int { return &n }

func mustDecimal(t *testing.T, d decimal.NullDecimal) decimal.Decimal {
	t.Helper()
	require.True(t, d.Valid, "expected a value, got null")
	return d.Decimal
}
