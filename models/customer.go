package models

import "time"

// Customer is a storefront account. Password holds a bcrypt hash.
type Customer struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Password  string `gorm:"not null" json:"-"`
	Gender    string `gorm:"size:10" json:"gender"`
	Country   string `gorm:"size:100" json:"country"`
	City      string `gorm:"size:100" json:"city"`
	Address   string `gorm:"size:255" json:"address"`
	Image     string `gorm:"size:255" json:"image"`
	CreatedAt time.Time
}
