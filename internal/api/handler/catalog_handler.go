package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-system/internal/core/ports"
)

// CatalogHandler serves the read-only catalog listing API.
type CatalogHandler struct {
	catalog ports.CatalogRepository
}

func NewCatalogHandler(catalog ports.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories returns all categories.
//
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// ListProducts returns all products.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
