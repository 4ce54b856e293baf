// internal/services/serializers.go
package services

import (
	"strings"

	"github.com/craveshop/crave-backend/internal/models"
)

// Explicit response mapping per entity. Absolute-URL rewriting and the
// legacy-image fallback live here as visible steps instead of being
// hooked into a generic serialization pipeline.

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductImageResponse struct {
	ID        uint   `json:"id"`
	Image     string `json:"image"`
	IsPrimary bool   `json:"is_primary"`
	AltText   string `json:"alt_text"`
	Order     uint   `json:"order"`
}

type ProductResponse struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Price        float64                `json:"price"`
	Category     uint                   `json:"category"`
	CategoryName string                 `json:"category_name"`
	Image        string                 `json:"image"`
	InStock      bool                   `json:"in_stock"`
	Featured     bool                   `json:"featured"`
	Discount     float64                `json:"discount"`
	Size         string                 `json:"size,omitempty"`
	Flavour      string                 `json:"flavour,omitempty"`
	Images       []ProductImageResponse `json:"images"`
}

func NewCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, NewCategoryResponse(&categories[i]))
	}
	return responses
}

func NewProductImageResponse(image *models.ProductImage, baseURL string) ProductImageResponse {
	return ProductImageResponse{
		ID:        image.ID,
		Image:     AbsoluteImageURL(image.Image, baseURL),
		IsPrimary: image.IsPrimary,
		AltText:   image.AltText,
		Order:     image.Order,
	}
}

func NewProductResponse(product *models.Product, baseURL string) ProductResponse {
	resp := ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		Category:     product.CategoryID,
		CategoryName: product.Category.Name,
		Image:        AbsoluteImageURL(product.Image, baseURL),
		InStock:      product.InStock,
		Featured:     product.Featured,
		Discount:     product.Discount,
		Size:         product.Size,
		Flavour:      product.Flavour,
		Images:       make([]ProductImageResponse, 0, len(product.Images)),
	}

	for i := range product.Images {
		resp.Images = append(resp.Images, NewProductImageResponse(&product.Images[i], baseURL))
	}

	// Legacy products carry a single URL instead of image rows;
	// synthesize one entry so consumers never special-case them.
	if len(resp.Images) == 0 && product.Image != "" {
		resp.Images = append(resp.Images, ProductImageResponse{
			ID:        0,
			Image:     AbsoluteImageURL(product.Image, baseURL),
			IsPrimary: true,
			AltText:   product.Name,
			Order:     0,
		})
	}

	return resp
}

func NewProductListResponse(products []models.Product, baseURL string) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductResponse(&products[i], baseURL))
	}
	return responses
}

// AbsoluteImageURL rewrites relative URLs against the serving request's
// scheme+host; URLs that are already absolute pass through unchanged.
func AbsoluteImageURL(raw, baseURL string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(raw, "/")
}
