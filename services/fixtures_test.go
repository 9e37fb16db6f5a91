package services

import (
	"testing"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/database/databasetest"
	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	c := models.Category{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, id, categoryID uint, price float64) models.Product {
	t.Helper()
	p := models.Product{
		ID:          id,
		Name:        "Product",
		Price:       price,
		Description: "A product",
		CategoryID:  categoryID,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	t.Helper()
	hash, err := auth.HashPassword("Customer@123")
	require.NoError(t, err)
	c := models.Customer{Name: "Customer", Email: email, Password: hash}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func activeRows(t *testing.T, db *gorm.DB, customerID uint) []models.Cart {
	t.Helper()
	var rows []models.Cart
	require.NoError(t, db.Where("customer_id = ? AND status = ?", customerID, models.CartStatusActive).
		Order("id asc").Find(&rows).Error)
	return rows
}

// newDB is a migrated throwaway database.
func newDB(t *testing.T) *gorm.DB {
	return databasetest.New(t)
}
