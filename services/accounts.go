package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/mail"
	"strings"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/filestore"
	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// Registration is what a visitor submits to create an account.
type Registration struct {
	Name     string `form:"CustomerName" binding:"required,max=100"`
	Email    string `form:"CustomerEmail" binding:"required,email,max=100"`
	Phone    string `form:"CustomerPhone" binding:"max=20"`
	Password string `form:"CustomerPassword" binding:"required,min=6,max=100"`
	Gender   string `form:"CustomerGender" binding:"max=10"`
	Country  string `form:"CustomerCountry" binding:"max=100"`
	City     string `form:"CustomerCity" binding:"max=100"`
	Address  string `form:"CustomerAddress" binding:"max=255"`
}

// CustomerUpdate is the allow-list for profile edits made by the customer
// or an admin. An empty Password keeps the current one.
type CustomerUpdate struct {
	Name     string `form:"CustomerName" binding:"required,max=100"`
	Email    string `form:"CustomerEmail" binding:"required,email,max=100"`
	Phone    string `form:"CustomerPhone" binding:"max=20"`
	Password string `form:"CustomerPassword" binding:"omitempty,min=6,max=100"`
	Gender   string `form:"CustomerGender" binding:"max=10"`
	Country  string `form:"CustomerCountry" binding:"max=100"`
	City     string `form:"CustomerCity" binding:"max=100"`
	Address  string `form:"CustomerAddress" binding:"max=255"`
}

// AdminUpdate is the allow-list for the admin's own profile.
type AdminUpdate struct {
	Name     string `form:"AdminName" binding:"required,max=100"`
	Email    string `form:"AdminEmail" binding:"required,email,max=100"`
	Password string `form:"AdminPassword" binding:"omitempty,min=6,max=100"`
}

func checkIdentity(nameField, name, emailField, email string) error {
	if name == "" {
		return invalid(nameField, "Name is required.")
	}
	if len(name) > 100 {
		return invalid(nameField, "Name cannot exceed 100 characters.")
	}
	if email == "" {
		return invalid(emailField, "Email is required.")
	}
	if len(email) > 100 {
		return invalid(emailField, "Email cannot exceed 100 characters.")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return invalid(emailField, "Invalid email address.")
	}
	return nil
}

func checkNewPassword(field, password string, required bool) error {
	if password == "" && !required {
		return nil
	}
	if len(password) < minPasswordLength {
		return invalid(field, "Password must be at least 6 characters.")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AccountService handles admins and customers: sign-in checks,
// registration, profile edits and profile images.
type AccountService struct {
	db     *gorm.DB
	files  *filestore.Store
	logger *zap.Logger
}

func NewAccountService(db *gorm.DB, files *filestore.Store, logger *zap.Logger) *AccountService {
	return &AccountService{db: db, files: files, logger: logger}
}

// AuthenticateAdmin returns the admin whose email and password match.
func (s *AccountService) AuthenticateAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(admin.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

// AuthenticateCustomer returns the customer whose email and password match.
func (s *AccountService) AuthenticateCustomer(ctx context.Context, email, password string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(customer.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &customer, nil
}

func (s *AccountService) RegisterCustomer(ctx context.Context, in Registration) (*models.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := checkIdentity("CustomerName", in.Name, "CustomerEmail", in.Email); err != nil {
		return nil, err
	}
	if err := checkNewPassword("CustomerPassword", in.Password, true); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	customer := models.Customer{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    strings.TrimSpace(in.Phone),
		Password: hash,
		Gender:   in.Gender,
		Country:  in.Country,
		City:     in.City,
		Address:  in.Address,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := emailFree(tx, &models.Customer{}, in.Email, 0, "CustomerEmail"); err != nil {
			return err
		}
		return tx.Create(&customer).Error
	})
	if err != nil {
		return nil, duplicate(err, "CustomerEmail", "Email already registered.")
	}
	s.logger.Info("customer registered", zap.Uint("customer_id", customer.ID))
	return &customer, nil
}

// emailFree reports ErrDuplicate when another row of model already uses email.
func emailFree(tx *gorm.DB, model interface{}, email string, exceptID uint, field string) error {
	var count int64
	if err := tx.Model(model).Where("email = ? AND id <> ?", email, exceptID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %w", ErrDuplicate, invalid(field, "Email already in use."))
	}
	return nil
}

func (s *AccountService) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, notFound(err, "admin", id)
	}
	return &admin, nil
}

func (s *AccountService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, notFound(err, "customer", id)
	}
	return &customer, nil
}

func (s *AccountService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.WithContext(ctx).Order("id asc").Find(&customers).Error
	return customers, err
}

// UpdateAdminProfile edits name and email, and the password only when a
// new one is given.
func (s *AccountService) UpdateAdminProfile(ctx context.Context, id uint, in AdminUpdate) (*models.Admin, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := checkIdentity("AdminName", in.Name, "AdminEmail", in.Email); err != nil {
		return nil, err
	}
	if err := checkNewPassword("AdminPassword", in.Password, false); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"name": in.Name, "email": in.Email}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}

	var admin models.Admin
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&admin, id).Error; err != nil {
			return notFound(err, "admin", id)
		}
		if err := emailFree(tx, &models.Admin{}, in.Email, id, "AdminEmail"); err != nil {
			return err
		}
		return tx.Model(&admin).Updates(updates).Error
	})
	if err != nil {
		return nil, duplicate(err, "AdminEmail", "Email already in use.")
	}
	return &admin, nil
}

// UpdateCustomer edits the allow-listed profile fields of customer id.
func (s *AccountService) UpdateCustomer(ctx context.Context, id uint, in CustomerUpdate) (*models.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := checkIdentity("CustomerName", in.Name, "CustomerEmail", in.Email); err != nil {
		return nil, err
	}
	if err := checkNewPassword("CustomerPassword", in.Password, false); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   strings.TrimSpace(in.Phone),
		"gender":  in.Gender,
		"country": in.Country,
		"city":    in.City,
		"address": in.Address,
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}

	var customer models.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, id).Error; err != nil {
			return notFound(err, "customer", id)
		}
		if err := emailFree(tx, &models.Customer{}, in.Email, id, "CustomerEmail"); err != nil {
			return err
		}
		return tx.Model(&customer).Updates(updates).Error
	})
	if err != nil {
		return nil, duplicate(err, "CustomerEmail", "Email already in use.")
	}
	return &customer, nil
}

// ChangeAdminImage stores the new picture, points the admin at it and then
// removes the previous one.
func (s *AccountService) ChangeAdminImage(ctx context.Context, id uint, image *multipart.FileHeader) (string, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return "", notFound(err, "admin", id)
	}
	return s.replaceImage(ctx, &admin, admin.Image, image, filestore.AdminImages)
}

func (s *AccountService) ChangeCustomerImage(ctx context.Context, id uint, image *multipart.FileHeader) (string, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return "", notFound(err, "customer", id)
	}
	return s.replaceImage(ctx, &customer, customer.Image, image, filestore.CustomerImages)
}

func (s *AccountService) replaceImage(ctx context.Context, model interface{}, oldImage string, image *multipart.FileHeader, rule filestore.Rule) (string, error) {
	saved, err := s.files.SaveImage(image, rule)
	if err != nil {
		return "", err
	}
	if err := s.db.WithContext(ctx).Model(model).Update("image", saved).Error; err != nil {
		s.files.Delete(saved)
		return "", err
	}
	if oldImage != "" && !s.files.Delete(oldImage) {
		s.logger.Debug("previous image already gone", zap.String("image", oldImage))
	}
	return saved, nil
}

// DeleteCustomer removes the customer with their cart rows, then the
// profile image.
func (s *AccountService) DeleteCustomer(ctx context.Context, id uint) error {
	var customer models.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, id).Error; err != nil {
			return notFound(err, "customer", id)
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		return err
	}
	if customer.Image != "" {
		s.files.Delete(customer.Image)
	}
	return nil
}
