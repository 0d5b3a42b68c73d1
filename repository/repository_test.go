package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yuki-dev/imagewsbackend/database"
)

// newTestDB opens a fresh in-memory store with the full schema, torn down
// with the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.InitGormDB(database.InMemoryDSN)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}
