package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartService mutates a customer's active cart rows.
type CartService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCartService(db *gorm.DB, logger *zap.Logger) *CartService {
	return &CartService{db: db, logger: logger}
}

func validQuantity(q int) bool {
	return q >= models.MinCartQuantity && q <= models.MaxCartQuantity
}

func clampQuantity(q int) int {
	if q > models.MaxCartQuantity {
		return models.MaxCartQuantity
	}
	return q
}

// AddToCart increments the active row for (customer, product), capped at
// 99, or inserts one. The lookup and write share a transaction; if a
// concurrent insert wins the unique index the whole step is retried once.
func (s *CartService) AddToCart(ctx context.Context, customerID, productID uint, quantity int) (*models.Cart, error) {
	if customerID == 0 {
		return nil, ErrForbidden
	}
	if !validQuantity(quantity) {
		return nil, ErrInvalidQuantity
	}

	item, err := s.addOnce(ctx, customerID, productID, quantity)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		s.logger.Debug("cart insert raced, retrying",
			zap.Uint("customer_id", customerID), zap.Uint("product_id", productID))
		item, err = s.addOnce(ctx, customerID, productID, quantity)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) addOnce(ctx context.Context, customerID, productID uint, quantity int) (*models.Cart, error) {
	var item models.Cart
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Select("id").First(&product, productID).Error; err != nil {
			return notFound(err, "product", productID)
		}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("customer_id = ? AND product_id = ? AND status = ?", customerID, productID, models.CartStatusActive).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.Cart{
				ProductID:  productID,
				CustomerID: customerID,
				Quantity:   quantity,
				Status:     models.CartStatusActive,
			}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}

		item.Quantity = clampQuantity(item.Quantity + quantity)
		return tx.Model(&item).Update("quantity", item.Quantity).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity sets an owned active row's quantity.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, customerID uint, quantity int) error {
	if !validQuantity(quantity) {
		return ErrInvalidQuantity
	}
	item, err := s.owned(ctx, cartID, customerID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(item).Update("quantity", quantity).Error
}

// RemoveFromCart deletes an owned active row.
func (s *CartService) RemoveFromCart(ctx context.Context, cartID, customerID uint) error {
	item, err := s.owned(ctx, cartID, customerID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(item).Error
}

func (s *CartService) owned(ctx context.Context, cartID, customerID uint) (*models.Cart, error) {
	if customerID == 0 {
		return nil, ErrForbidden
	}
	var item models.Cart
	err := s.db.WithContext(ctx).
		Where("status = ?", models.CartStatusActive).
		First(&item, cartID).Error
	if err != nil {
		return nil, notFound(err, "cart item", cartID)
	}
	if item.CustomerID != customerID {
		return nil, fmt.Errorf("cart item %d: %w", cartID, ErrForbidden)
	}
	return &item, nil
}

// CountItems sums quantities across the customer's active rows. An
// anonymous caller (id 0) has an empty cart.
func (s *CartService) CountItems(ctx context.Context, customerID uint) (int, error) {
	if customerID == 0 {
		return 0, nil
	}
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Cart{}).
		Where("customer_id = ? AND status = ?", customerID, models.CartStatusActive).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// ListActive returns the cart with products and their categories.
func (s *CartService) ListActive(ctx context.Context, customerID uint) ([]models.Cart, error) {
	var items []models.Cart
	err := s.db.WithContext(ctx).
		Preload("Product.Category").
		Where("customer_id = ? AND status = ?", customerID, models.CartStatusActive).
		Order("id asc").
		Find(&items).Error
	return items, err
}

// CartTotal is the sum of line totals.
func CartTotal(items []models.Cart) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}
