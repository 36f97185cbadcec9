package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"zentro/internal/services/catalog"
	"zentro/internal/utils/response"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// ListProducts serves the catalog with optional search, category and sort
// query parameters.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	query := c.Query("q")
	category := c.Query("category")
	sortBy := c.Query("sort")

	if query == "" && category == "" && sortBy == "" {
		return response.Success(c, "Products", h.catalog.List())
	}
	return response.Success(c, "Products", h.catalog.Search(query, category, sortBy))
}

func (h *CatalogHandler) ListFeatured(c *fiber.Ctx) error {
	return response.Success(c, "Featured products", h.catalog.Featured())
}

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return response.Success(c, "Categories", h.catalog.Categories())
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.catalog.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.ServerError(c, "Failed to load product")
	}
	return response.Success(c, "Product", product)
}
