package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bloghub/internal/db"
	"bloghub/internal/model"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.Open(":memory:")
	require.NoError(t, err, "failed to initialize test database")

	// An in-memory SQLite database exists per connection; keep the pool at
	// one so every query sees the same schema.
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = conn.AutoMigrate(&model.User{}, &model.Post{})
	require.NoError(t, err, "failed to migrate tables")

	return conn
}
