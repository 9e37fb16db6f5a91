package models

import "time"

// Feedback is append-only and has no owner link.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserName  string    `gorm:"size:100;not null" json:"user_name"`
	Message   string    `gorm:"size:2000;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Faq struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"size:500;not null" json:"question"`
	Answer   string `gorm:"size:2000;not null" json:"answer"`
}

// All lists every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&Customer{},
		&Category{},
		&Product{},
		&Cart{},
		&Feedback{},
		&Faq{},
	}
}
