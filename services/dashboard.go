package services

import (
	"context"

	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"gorm.io/gorm"
)

// Counts is the back-office overview.
type Counts struct {
	Customers  int64
	Categories int64
	Products   int64
	Feedback   int64
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Counts(ctx context.Context) (Counts, error) {
	var out Counts
	db := s.db.WithContext(ctx)
	for _, q := range []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Customer{}, &out.Customers},
		{&models.Category{}, &out.Categories},
		{&models.Product{}, &out.Products},
		{&models.Feedback{}, &out.Feedback},
	} {
		if err := db.Model(q.model).Count(q.dst).Error; err != nil {
			return Counts{}, err
		}
	}
	return out, nil
}
