package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Youssef-M-Salama/E-Commerce-Website/cache"
	"github.com/Youssef-M-Salama/E-Commerce-Website/filestore"
	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	categoriesCacheKey = "categories"
	productsCacheKey   = "products"
)

// CategoryInput is the only data an admin may set on a category.
type CategoryInput struct {
	Name string `form:"CategoryName" binding:"required,max=100"`
}

func (in *CategoryInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return invalid("CategoryName", "Category name is required.")
	}
	if len(in.Name) > 100 {
		return invalid("CategoryName", "Category name cannot exceed 100 characters.")
	}
	return nil
}

// ProductInput is the only data an admin may set on a product; the image
// travels separately.
type ProductInput struct {
	Name        string  `form:"ProductName" binding:"required,max=200"`
	Price       float64 `form:"ProductPrice" binding:"required"`
	Description string  `form:"ProductDescription" binding:"required,max=2000"`
	CategoryID  uint    `form:"CategoryId" binding:"required"`
}

func (in *ProductInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.Name == "":
		return invalid("ProductName", "Product name is required.")
	case len(in.Name) > 200:
		return invalid("ProductName", "Product name cannot exceed 200 characters.")
	case in.Price < models.MinProductPrice || in.Price > models.MaxProductPrice:
		return invalid("ProductPrice", "Price must be between $0.01 and $999,999.99.")
	case in.Description == "":
		return invalid("ProductDescription", "Description is required.")
	case len(in.Description) > 2000:
		return invalid("ProductDescription", "Description cannot exceed 2,000 characters.")
	case in.CategoryID == 0:
		return invalid("CategoryId", "Category is required.")
	}
	return nil
}

// CatalogService owns categories and products.
type CatalogService struct {
	db     *gorm.DB
	cache  cache.Catalog
	files  *filestore.Store
	logger *zap.Logger
}

func NewCatalogService(db *gorm.DB, c cache.Catalog, files *filestore.Store, logger *zap.Logger) *CatalogService {
	if c == nil {
		c = cache.Noop{}
	}
	return &CatalogService{db: db, cache: c, files: files, logger: logger}
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

func (s *CatalogService) remember(ctx context.Context, key string, v interface{}) {
	if err := s.cache.Set(ctx, key, v); err != nil {
		s.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// ---------------- Categories ----------------

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if s.cache.Get(ctx, categoriesCacheKey, &categories) {
		return categories, nil
	}
	if err := s.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	s.remember(ctx, categoriesCacheKey, categories)
	return categories, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, notFound(err, "category", id)
	}
	return &category, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	category := models.Category{Name: in.Name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureCategoryNameFree(tx, in.Name, 0); err != nil {
			return err
		}
		return tx.Create(&category).Error
	})
	if err != nil {
		return nil, duplicate(err, "CategoryName", "Category already exists.")
	}
	s.invalidate(ctx)
	return &category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, in CategoryInput) (*models.Category, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	var category models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			return notFound(err, "category", id)
		}
		if err := s.ensureCategoryNameFree(tx, in.Name, id); err != nil {
			return err
		}
		category.Name = in.Name
		return tx.Model(&category).Update("name", in.Name).Error
	})
	if err != nil {
		return nil, duplicate(err, "CategoryName", "Category name already in use.")
	}
	s.invalidate(ctx)
	return &category, nil
}

func (s *CatalogService) ensureCategoryNameFree(tx *gorm.DB, name string, exceptID uint) error {
	var count int64
	if err := tx.Model(&models.Category{}).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %w", ErrDuplicate, invalid("CategoryName", "Category already exists."))
	}
	return nil
}

// DeleteCategory refuses while any product still belongs to the category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			return notFound(err, "category", id)
		}
		var products int64
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&products).Error; err != nil {
			return err
		}
		if products > 0 {
			return ErrCategoryInUse
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ---------------- Products ----------------

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if s.cache.Get(ctx, productsCacheKey, &products) {
		return products, nil
	}
	if err := s.db.WithContext(ctx).Preload("Category").Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	s.remember(ctx, productsCacheKey, products)
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Preload("Category").First(&product, id).Error; err != nil {
		return nil, notFound(err, "product", id)
	}
	return &product, nil
}

func (s *CatalogService) categoryExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return invalid("CategoryId", "Selected category does not exist.")
	}
	return nil
}

// CreateProduct stores the image first; if the row cannot be written the
// image is removed again.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput, image *multipart.FileHeader) (*models.Product, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	if err := s.categoryExists(s.db.WithContext(ctx), in.CategoryID); err != nil {
		return nil, err
	}
	imagePath, err := s.files.SaveImage(image, filestore.ProductImages)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Image:       imagePath,
		CategoryID:  in.CategoryID,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		s.files.Delete(imagePath)
		return nil, err
	}
	s.invalidate(ctx)
	return &product, nil
}

// UpdateProduct copies the allow-listed fields. A new image replaces the
// old one, which is deleted only after the row is committed.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, in ProductInput, image *multipart.FileHeader) (*models.Product, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, notFound(err, "product", id)
	}
	if err := s.categoryExists(s.db.WithContext(ctx), in.CategoryID); err != nil {
		return nil, err
	}

	oldImage := product.Image
	newImage := ""
	if image != nil {
		saved, err := s.files.SaveImage(image, filestore.ProductImages)
		if err != nil {
			return nil, err
		}
		newImage = saved
	}

	updates := map[string]interface{}{
		"name":        in.Name,
		"price":       in.Price,
		"description": in.Description,
		"category_id": in.CategoryID,
	}
	if newImage != "" {
		updates["image"] = newImage
	}
	if err := s.db.WithContext(ctx).Model(&product).Updates(updates).Error; err != nil {
		if newImage != "" {
			s.files.Delete(newImage)
		}
		return nil, err
	}
	if newImage != "" {
		s.releaseImage(ctx, oldImage)
	}
	s.invalidate(ctx)
	return s.GetProduct(ctx, id)
}

// UpsertProduct updates product id when it exists, otherwise creates a new
// product. imagePath must name an uploaded product image; an empty one keeps
// the current image. A replaced image is released after the commit. It
// reports whether a row was created.
func (s *CatalogService) UpsertProduct(ctx context.Context, id uint, in ProductInput, imagePath string) (bool, error) {
	if err := in.normalize(); err != nil {
		return false, err
	}
	if imagePath != "" {
		published, ok := s.files.Published(imagePath, filestore.ProductImages)
		if !ok {
			return false, invalid("ProductImage", "Image must be an uploaded product image.")
		}
		imagePath = published
	}

	created := false
	oldImage := ""
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.categoryExists(tx, in.CategoryID); err != nil {
			return err
		}
		var existing models.Product
		if id != 0 {
			err := tx.First(&existing, id).Error
			if err == nil {
				updates := map[string]interface{}{
					"name":        in.Name,
					"price":       in.Price,
					"description": in.Description,
					"category_id": in.CategoryID,
				}
				if imagePath != "" && imagePath != existing.Image {
					updates["image"] = imagePath
					oldImage = existing.Image
				}
				return tx.Model(&existing).Updates(updates).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		created = true
		return tx.Create(&models.Product{
			Name:        in.Name,
			Price:       in.Price,
			Description: in.Description,
			Image:       imagePath,
			CategoryID:  in.CategoryID,
		}).Error
	})
	if err != nil {
		return false, err
	}
	s.releaseImage(ctx, oldImage)
	s.invalidate(ctx)
	return created, nil
}

// releaseImage deletes image once no product refers to it. Imports can
// point several products at one file.
func (s *CatalogService) releaseImage(ctx context.Context, image string) {
	if image == "" {
		return
	}
	var refs int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("image = ?", image).Count(&refs).Error; err != nil {
		s.logger.Warn("image references not counted", zap.String("image", image), zap.Error(err))
		return
	}
	if refs > 0 {
		return
	}
	if !s.files.Delete(image) {
		s.logger.Warn("product image not removed", zap.String("image", image))
	}
}

// DeleteProduct removes the product and its cart rows in one transaction,
// then releases the image file.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	var product models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			return notFound(err, "product", id)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		return err
	}
	s.releaseImage(ctx, product.Image)
	s.invalidate(ctx)
	return nil
}
