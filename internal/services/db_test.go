// internal/services/db_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/craveshop/crave-backend/internal/models"
)

// newTestDB opens a fresh in-memory database per test so suites never
// leak state into each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
	))

	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, categoryID uint, name string, featured bool) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:        name,
		Description: "test product",
		Price:       9.99,
		CategoryID:  categoryID,
		InStock:     true,
		Featured:    featured,
		Discount:    0.82,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
