package models

import "time"

const (
	MinProductPrice = 0.01
	MaxProductPrice = 999999.99
)

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string    `gorm:"size:2000;not null" json:"description"`
	Image       string    `gorm:"size:255" json:"image"`
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
