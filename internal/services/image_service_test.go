// internal/services/image_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/craveshop/crave-backend/internal/models"
)

type ImageServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ImageService
	product *models.Product
}

func (suite *ImageServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewImageService(suite.db)

	category := createTestCategory(suite.T(), suite.db, "Cakes")
	suite.product = createTestProduct(suite.T(), suite.db, category.ID, "Chocolate Cake", false)
}

func (suite *ImageServiceTestSuite) primaryCount() int64 {
	var count int64
	suite.db.Model(&models.ProductImage{}).
		Where("product_id = ? AND is_primary = ?", suite.product.ID, true).
		Count(&count)
	return count
}

func (suite *ImageServiceTestSuite) TestFirstImageAlwaysPrimary() {
	// Caller explicitly asks for non-primary; the first image wins anyway.
	image, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{
		Image:     "/media/cake-front.jpg",
		IsPrimary: false,
	})

	suite.NoError(err)
	suite.True(image.IsPrimary)
	suite.Equal(int64(1), suite.primaryCount())
}

func (suite *ImageServiceTestSuite) TestNewPrimaryDemotesSiblings() {
	first, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/a.jpg"})
	suite.NoError(err)
	suite.True(first.IsPrimary)

	second, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{
		Image:     "/media/b.jpg",
		IsPrimary: true,
	})
	suite.NoError(err)
	suite.True(second.IsPrimary)

	suite.Equal(int64(1), suite.primaryCount())

	var persisted models.ProductImage
	suite.NoError(suite.db.First(&persisted, first.ID).Error)
	suite.False(persisted.IsPrimary)
}

func (suite *ImageServiceTestSuite) TestNonPrimarySecondImageKeepsFirst() {
	first, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/a.jpg"})
	suite.NoError(err)

	second, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/b.jpg"})
	suite.NoError(err)
	suite.False(second.IsPrimary)

	var persisted models.ProductImage
	suite.NoError(suite.db.First(&persisted, first.ID).Error)
	suite.True(persisted.IsPrimary)
	suite.Equal(int64(1), suite.primaryCount())
}

func (suite *ImageServiceTestSuite) TestUpdateToPrimaryDemotesSiblings() {
	_, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/a.jpg"})
	suite.NoError(err)
	second, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/b.jpg"})
	suite.NoError(err)

	isPrimary := true
	updated, err := suite.service.UpdateImage(second.ID, &UpdateImageRequest{IsPrimary: &isPrimary})

	suite.NoError(err)
	suite.True(updated.IsPrimary)
	suite.Equal(int64(1), suite.primaryCount())
}

func (suite *ImageServiceTestSuite) TestInvariantHoldsAcrossManyWrites() {
	images := []string{"/media/a.jpg", "/media/b.jpg", "/media/c.jpg", "/media/d.jpg"}
	for i, path := range images {
		_, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{
			Image:     path,
			IsPrimary: i%2 == 1,
			Order:     uint(i),
		})
		suite.NoError(err)
		suite.Equal(int64(1), suite.primaryCount())
	}
}

func (suite *ImageServiceTestSuite) TestImagesOnDifferentProductsIndependent() {
	other := createTestProduct(suite.T(), suite.db, suite.product.CategoryID, "Vanilla Cake", false)

	_, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/a.jpg"})
	suite.NoError(err)
	_, err = suite.service.CreateImage(other.ID, &CreateImageRequest{Image: "/media/b.jpg", IsPrimary: true})
	suite.NoError(err)

	suite.Equal(int64(1), suite.primaryCount())

	var otherPrimary int64
	suite.db.Model(&models.ProductImage{}).
		Where("product_id = ? AND is_primary = ?", other.ID, true).
		Count(&otherPrimary)
	suite.Equal(int64(1), otherPrimary)
}

// applyPrimaryIndex mirrors the migration's partial unique index so the
// suite runs against the same schema the server migrates to.
func (suite *ImageServiceTestSuite) applyPrimaryIndex() {
	suite.Require().NoError(suite.db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_product_images_primary ON product_images(product_id) WHERE is_primary",
	).Error)
}

func (suite *ImageServiceTestSuite) TestCreatePromotionUnderUniqueIndex() {
	suite.applyPrimaryIndex()

	first, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/a.jpg"})
	suite.NoError(err)
	suite.True(first.IsPrimary)

	second, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{
		Image:     "/media/b.jpg",
		IsPrimary: true,
	})
	suite.NoError(err)
	suite.True(second.IsPrimary)
	suite.Equal(int64(1), suite.primaryCount())
}

func (suite *ImageServiceTestSuite) TestUpdatePromotionUnderUniqueIndex() {
	suite.applyPrimaryIndex()

	_, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/a.jpg"})
	suite.NoError(err)
	second, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/b.jpg"})
	suite.NoError(err)

	isPrimary := true
	updated, err := suite.service.UpdateImage(second.ID, &UpdateImageRequest{IsPrimary: &isPrimary})

	suite.NoError(err)
	suite.True(updated.IsPrimary)
	suite.Equal(int64(1), suite.primaryCount())

	var previous models.ProductImage
	suite.NoError(suite.db.Where("image = ?", "/media/a.jpg").First(&previous).Error)
	suite.False(previous.IsPrimary)
}

func (suite *ImageServiceTestSuite) TestCreateImageUnknownProduct() {
	_, err := suite.service.CreateImage(9999, &CreateImageRequest{Image: "/media/a.jpg"})
	suite.ErrorContains(err, "not found")
}

func (suite *ImageServiceTestSuite) TestDeleteImage() {
	image, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/a.jpg"})
	suite.NoError(err)

	suite.NoError(suite.service.DeleteImage(image.ID))

	var count int64
	suite.db.Model(&models.ProductImage{}).Where("product_id = ?", suite.product.ID).Count(&count)
	suite.Zero(count)
}

func (suite *ImageServiceTestSuite) TestListImagesOrdered() {
	_, err := suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/b.jpg", Order: 2})
	suite.NoError(err)
	_, err = suite.service.CreateImage(suite.product.ID, &CreateImageRequest{Image: "/media/a.jpg", Order: 1})
	suite.NoError(err)

	images, err := suite.service.ListImages(suite.product.ID)
	suite.NoError(err)
	suite.Len(images, 2)
	suite.Equal("/media/a.jpg", images[0].Image)
	suite.Equal("/media/b.jpg", images[1].Image)
}

func TestImageServiceSuite(t *testing.T) {
	suite.Run(t, new(ImageServiceTestSuite))
}
