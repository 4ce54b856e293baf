// internal/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/craveshop/crave-backend/internal/services"
	"github.com/craveshop/crave-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, services.NewCategoryListResponse(categories))
}

// GET /categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c)
		return
	}

	category, err := h.catalogService.GetCategory(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, services.NewCategoryResponse(category))
}

// GET /products?category={id}&featured={true|false}
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var params services.ProductQueryParams

	if categoryStr := c.Query("category"); categoryStr != "" {
		if categoryID, err := parseID(categoryStr); err == nil {
			params.CategoryID = &categoryID
		}
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err == nil {
			params.Featured = &featured
		}
	}

	products, err := h.catalogService.ListProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, services.NewProductListResponse(products, utils.RequestBaseURL(c)))
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c)
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, services.NewProductResponse(product, utils.RequestBaseURL(c)))
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
