package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Menu handles GET /menu.
//
// @Summary      List all menu items
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.MenuItem
// @Router       /menu [get]
func (h *CatalogHandler) Menu(c echo.Context) error {
	items, err := h.service.Menu(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Reviews handles GET /reviews.
//
// @Summary      List all reviews
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /reviews [get]
func (h *CatalogHandler) Reviews(c echo.Context) error {
	reviews, err := h.service.Reviews(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
