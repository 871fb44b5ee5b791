package persistence

import (
	"testing"

	"github.com/resinworks/backend/internal/domain/identity"
	"github.com/resinworks/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with all tables migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ResinLotModel{},
		&models.SaleItemModel{},
		&models.ClientModel{},
		&models.UserModel{},
	)
	require.NoError(t, err)

	return db
}

func mustUser(t *testing.T, email string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(email, "$2a$10$testhash", "Maker")
	require.NoError(t, err)
	return user
}
