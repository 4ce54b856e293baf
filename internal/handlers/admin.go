// internal/handlers/admin.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/craveshop/crave-backend/internal/services"
	"github.com/craveshop/crave-backend/internal/utils"
)

// AdminHandler covers catalog management: categories, products, their
// image collections, and raw image file uploads.
type AdminHandler struct {
	catalogService *services.CatalogService
	imageService   *services.ImageService
	storageService *services.StorageService
}

func NewAdminHandler(catalogService *services.CatalogService, imageService *services.ImageService, storageService *services.StorageService) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		imageService:   imageService,
		storageService: storageService,
	}
}

// POST /admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	category, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"category": category})
}

// DELETE /admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	if err := h.catalogService.DeleteCategory(id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Category deleted"})
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"product": product})
}

// PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(id, &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.catalogService.DeleteProduct(id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Product deleted"})
}

// POST /admin/products/:id/images
func (h *AdminHandler) CreateProductImage(c *gin.Context) {
	productID, err := parseID(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	image, err := h.imageService.CreateImage(productID, &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"image": image})
}

// PUT /admin/images/:id
func (h *AdminHandler) UpdateProductImage(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid image ID", nil)
		return
	}

	var req services.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	image, err := h.imageService.UpdateImage(id, &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"image": image})
}

// DELETE /admin/images/:id
func (h *AdminHandler) DeleteProductImage(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid image ID", nil)
		return
	}

	if err := h.imageService.DeleteImage(id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Image deleted"})
}

// POST /admin/uploads/images
func (h *AdminHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form", err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images uploaded", nil)
		return
	}

	var uploaded []services.UploadResult
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			continue
		}

		result, err := h.storageService.UploadImage(file, fileHeader)
		file.Close()

		if err != nil {
			continue
		}

		uploaded = append(uploaded, *result)
	}

	utils.SuccessResponse(c, gin.H{"images": uploaded})
}

func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case strings.Contains(err.Error(), "not found"):
		utils.NotFoundResponse(c)
	case strings.Contains(err.Error(), "validation failed"):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
