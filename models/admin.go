package models

// Admin is a back-office user. Password holds a bcrypt hash.
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Image    string `gorm:"size:255" json:"image"`
}
