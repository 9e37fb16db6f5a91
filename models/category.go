package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"products,omitempty"`
}
