package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/api/middleware"
	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addCartRequest struct {
	Email      string  `json:"email"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// List handles GET /carts?email= (bearer). The query email must match the
// authenticated caller; an absent query email yields an empty list.
//
// @Summary      List the caller's cart entries
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  false  "Owner email (must match the caller)"
// @Success      200    {array}   domain.CartEntry
// @Failure      401    {object}  map[string]any
// @Failure      403    {object}  map[string]any
// @Router       /carts [get]
func (h *CartHandler) List(c echo.Context) error {
	email := c.QueryParam("email")
	callerEmail, _ := c.Get(middleware.ContextKeyEmail).(string)

	entries, err := h.service.ListByOwner(c.Request().Context(), callerEmail, email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Add handles POST /carts (bearer).
//
// @Summary      Add a cart entry
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartRequest  true  "Cart entry"
// @Success      200   {object}  ports.InsertResult
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /carts [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	callerEmail, _ := c.Get(middleware.ContextKeyEmail).(string)

	res, err := h.service.Add(c.Request().Context(), callerEmail, domain.CartEntry{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /carts/:id (bearer). The entry must belong to the
// caller; the store's deleted count is reported verbatim.
//
// @Summary      Delete a cart entry
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Cart entry id"
// @Success      200 {object}  ports.DeleteResult
// @Failure      401 {object}  map[string]any
// @Failure      403 {object}  map[string]any
// @Failure      404 {object}  map[string]any
// @Router       /carts/{id} [delete]
func (h *CartHandler) Delete(c echo.Context) error {
	callerEmail, _ := c.Get(middleware.ContextKeyEmail).(string)

	res, err := h.service.Delete(c.Request().Context(), callerEmail, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
