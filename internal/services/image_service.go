// internal/services/image_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/craveshop/crave-backend/internal/models"
	"github.com/craveshop/crave-backend/internal/utils"
)

// ImageService owns the primary-image invariant: after any single image
// write completes, at most one image per product is marked primary, and
// the first image a product ever gets is primary no matter what the
// caller sent. Sibling demotion and the promoted write run in one
// transaction, demotion first: the partial unique index on
// product_images(product_id) WHERE is_primary is checked per statement,
// so the promoted row may only be written once no sibling holds the flag.
type ImageService struct {
	db *gorm.DB
}

type CreateImageRequest struct {
	Image     string `json:"image" validate:"required,max=500"`
	IsPrimary bool   `json:"is_primary,omitempty"`
	AltText   string `json:"alt_text,omitempty" validate:"omitempty,max=255"`
	Order     uint   `json:"order,omitempty"`
}

type UpdateImageRequest struct {
	Image     *string `json:"image,omitempty" validate:"omitempty,max=500"`
	IsPrimary *bool   `json:"is_primary,omitempty"`
	AltText   *string `json:"alt_text,omitempty" validate:"omitempty,max=255"`
	Order     *uint   `json:"order,omitempty"`
}

func NewImageService(db *gorm.DB) *ImageService {
	return &ImageService{db: db}
}

func (s *ImageService) CreateImage(productID uint, req *CreateImageRequest) (*models.ProductImage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var image *models.ProductImage
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("product not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		var siblingCount int64
		if err := tx.Model(&models.ProductImage{}).
			Where("product_id = ?", productID).
			Count(&siblingCount).Error; err != nil {
			return fmt.Errorf("failed to count images: %w", err)
		}

		image = &models.ProductImage{
			ProductID: productID,
			Image:     req.Image,
			IsPrimary: req.IsPrimary,
			AltText:   req.AltText,
			Order:     req.Order,
		}

		// The first image of a product is always primary.
		if siblingCount == 0 {
			image.IsPrimary = true
		}

		// No row exists yet, so id 0 excludes nothing.
		if image.IsPrimary && siblingCount > 0 {
			if err := s.demoteSiblings(tx, productID, 0); err != nil {
				return err
			}
		}

		if err := tx.Create(image).Error; err != nil {
			return fmt.Errorf("failed to create image: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return image, nil
}

func (s *ImageService) UpdateImage(id uint, req *UpdateImageRequest) (*models.ProductImage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var image models.ProductImage
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&image, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("image not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		updates := make(map[string]interface{})
		if req.Image != nil {
			updates["image"] = *req.Image
		}
		if req.IsPrimary != nil {
			updates["is_primary"] = *req.IsPrimary
		}
		if req.AltText != nil {
			updates["alt_text"] = *req.AltText
		}
		if req.Order != nil {
			updates["display_order"] = *req.Order
		}

		willBePrimary := image.IsPrimary
		if req.IsPrimary != nil {
			willBePrimary = *req.IsPrimary
		}

		// Demote before the promoted row is written; the unique index
		// would reject the update while a sibling still holds the flag.
		if willBePrimary {
			if err := s.demoteSiblings(tx, image.ProductID, image.ID); err != nil {
				return err
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&image).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update image: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &image, nil
}

func (s *ImageService) DeleteImage(id uint) error {
	var image models.ProductImage
	if err := s.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("image not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&image).Error; err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

func (s *ImageService) ListImages(productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := s.db.Where("product_id = ?", productID).
		Order("display_order, created_at").
		Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch images: %w", err)
	}
	return images, nil
}

func (s *ImageService) demoteSiblings(tx *gorm.DB, productID, exceptID uint) error {
	if err := tx.Model(&models.ProductImage{}).
		Where("product_id = ? AND id <> ?", productID, exceptID).
		Update("is_primary", false).Error; err != nil {
		return fmt.Errorf("failed to demote sibling images: %w", err)
	}
	return nil
}
