package models

import "time"

const (
	CartStatusRemoved = 0 // finalized or removed
	CartStatusActive  = 1

	MinCartQuantity = 1
	MaxCartQuantity = 99
)

// Cart is one line item. At most one active row exists per
// (CustomerID, ProductID); the partial unique index backs that up.
type Cart struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_active_pair,where:status = 1" json:"product_id"`
	CustomerID uint      `gorm:"not null;index;uniqueIndex:idx_cart_active_pair,where:status = 1" json:"customer_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Status     int       `gorm:"not null" json:"status"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LineTotal is price times quantity for display.
func (c Cart) LineTotal() float64 {
	return c.Product.Price * float64(c.Quantity)
}
