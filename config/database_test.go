package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-ordering/models"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "restaurant.db?_foreign_keys=1", SQLiteDSN("restaurant.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=1", SQLiteDSN("file:x?mode=memory"))
	assert.Equal(t, "file:x?_fk=0", SQLiteDSN("file:x?_fk=0"))
}

func TestInitDBEnforcesForeignKeys(t *testing.T) {
	db, err := InitDB(Config{DBDriver: "sqlite", DBDSN: "file:initdb_fk?mode=memory&cache=shared", GinMode: "release"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))
	err = db.Create(&models.Item{Title: "Soup", Slug: "soup", Pieces: 1, CreatedByID: 99}).Error
	assert.Error(t, err, "item with an unknown creator must be rejected")
}
