// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/craveshop/crave-backend/internal/models"
	"github.com/craveshop/crave-backend/internal/utils"
)

type CatalogService struct {
	db *gorm.DB
}

type ProductQueryParams struct {
	CategoryID *uint
	Featured   *bool
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	CategoryID  uint     `json:"category" validate:"required"`
	Image       string   `json:"image,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	Size        string   `json:"size,omitempty"`
	Flavour     string   `json:"flavour,omitempty"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	CategoryID  *uint    `json:"category,omitempty"`
	Image       *string  `json:"image,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	Size        *string  `json:"size,omitempty"`
	Flavour     *string  `json:"flavour,omitempty"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

// ListProducts returns the catalog ordered by name, optionally filtered
// by exact category and/or featured flag. Images are preloaded in
// display order so the primary/gallery mapping stays stable.
func (s *CatalogService) ListProducts(params ProductQueryParams) ([]models.Product, error) {
	query := s.db.Model(&models.Product{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order, created_at")
		}).
		Preload("Category")

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.Featured != nil {
		query = query.Where("featured = ?", *params.Featured)
	}

	var products []models.Product
	if err := query.Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	query := s.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order, created_at")
		}).
		Preload("Category")

	if err := query.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *CatalogService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{Name: req.Name}
	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes the category together with its products and
// their images in one transaction.
func (s *CatalogService) DeleteCategory(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("category not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		var productIDs []uint
		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", id).
			Pluck("id", &productIDs).Error; err != nil {
			return fmt.Errorf("failed to list category products: %w", err)
		}

		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).
				Delete(&models.ProductImage{}).Error; err != nil {
				return fmt.Errorf("failed to delete product images: %w", err)
			}
			if err := tx.Where("category_id = ?", id).
				Delete(&models.Product{}).Error; err != nil {
				return fmt.Errorf("failed to delete products: %w", err)
			}
		}

		return tx.Delete(&category).Error
	})
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.GetCategory(req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Image:       req.Image,
		InStock:     true,
		Featured:    req.Featured,
		Discount:    0.82,
		Size:        req.Size,
		Flavour:     req.Flavour,
	}

	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Discount != nil {
		product.Discount = *req.Discount
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *CatalogService) UpdateProduct(id uint, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Prepare updates
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		if _, err := s.GetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.InStock != nil {
		updates["in_stock"] = *req.InStock
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if req.Flavour != nil {
		updates["flavour"] = *req.Flavour
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return s.GetProduct(id)
}

func (s *CatalogService) DeleteProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("product not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete product images: %w", err)
		}

		return tx.Delete(&product).Error
	})
}
