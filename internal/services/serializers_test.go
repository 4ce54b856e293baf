// internal/services/serializers_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craveshop/crave-backend/internal/models"
)

func TestAbsoluteImageURL(t *testing.T) {
	base := "http://localhost:8080"

	assert.Equal(t, "", AbsoluteImageURL("", base))
	assert.Equal(t, "http://localhost:8080/media/cake.jpg", AbsoluteImageURL("/media/cake.jpg", base))
	assert.Equal(t, "http://localhost:8080/media/cake.jpg", AbsoluteImageURL("media/cake.jpg", base))
	assert.Equal(t, "http://localhost:8080/media/cake.jpg", AbsoluteImageURL("/media/cake.jpg", base+"/"))

	// Already-absolute URLs pass through untouched.
	assert.Equal(t, "https://cdn.example.com/cake.jpg", AbsoluteImageURL("https://cdn.example.com/cake.jpg", base))
	assert.Equal(t, "http://other.example.com/cake.jpg", AbsoluteImageURL("http://other.example.com/cake.jpg", base))
}

func TestNewProductResponseWithImages(t *testing.T) {
	product := &models.Product{
		ID:          7,
		Name:        "Chocolate Cake",
		Description: "Rich and moist",
		Price:       24.5,
		CategoryID:  3,
		Category:    models.Category{ID: 3, Name: "Cakes"},
		Image:       "/media/legacy.jpg",
		InStock:     true,
		Discount:    0.82,
		Images: []models.ProductImage{
			{ID: 11, ProductID: 7, Image: "/media/front.jpg", IsPrimary: true, AltText: "Front", Order: 0},
			{ID: 12, ProductID: 7, Image: "/media/side.jpg", Order: 1},
		},
	}

	resp := NewProductResponse(product, "http://localhost:8080")

	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, uint(3), resp.Category)
	assert.Equal(t, "Cakes", resp.CategoryName)
	assert.Equal(t, "http://localhost:8080/media/legacy.jpg", resp.Image)
	assert.Len(t, resp.Images, 2)
	assert.Equal(t, "http://localhost:8080/media/front.jpg", resp.Images[0].Image)
	assert.True(t, resp.Images[0].IsPrimary)
	assert.Equal(t, uint(1), resp.Images[1].Order)
}

func TestNewProductResponseLegacyImageFallback(t *testing.T) {
	product := &models.Product{
		ID:       7,
		Name:     "Chocolate Cake",
		Category: models.Category{Name: "Cakes"},
		Image:    "/media/legacy.jpg",
	}

	resp := NewProductResponse(product, "http://localhost:8080")

	assert.Len(t, resp.Images, 1)
	assert.Equal(t, uint(0), resp.Images[0].ID)
	assert.Equal(t, "http://localhost:8080/media/legacy.jpg", resp.Images[0].Image)
	assert.True(t, resp.Images[0].IsPrimary)
	assert.Equal(t, "Chocolate Cake", resp.Images[0].AltText)
}

func TestNewProductResponseNoImagesAtAll(t *testing.T) {
	product := &models.Product{ID: 7, Name: "Chocolate Cake"}

	resp := NewProductResponse(product, "http://localhost:8080")

	assert.NotNil(t, resp.Images)
	assert.Empty(t, resp.Images)
	assert.Equal(t, "", resp.Image)
}

func TestNewProductListResponseEmpty(t *testing.T) {
	resp := NewProductListResponse(nil, "http://localhost:8080")
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestNewCategoryListResponse(t *testing.T) {
	categories := []models.Category{{ID: 1, Name: "Cakes"}, {ID: 2, Name: "Pastries"}}

	resp := NewCategoryListResponse(categories)

	assert.Len(t, resp, 2)
	assert.Equal(t, CategoryResponse{ID: 1, Name: "Cakes"}, resp[0])
	assert.Equal(t, CategoryResponse{ID: 2, Name: "Pastries"}, resp[1])
}
