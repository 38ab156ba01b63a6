package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/api/metrics"
	"github.com/bistroboss/bistro-api/internal/api/middleware"
	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// List handles GET /users (bearer + admin).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /users — idempotent registration by email. A duplicate
// email is a normal outcome reported with a message, not an error.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User record"
// @Success      200   {object}  ports.InsertResult
// @Failure      400   {object}  map[string]any
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.Register(c.Request().Context(), domain.User{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return err
	}

	if res.Existed {
		metrics.UsersRegisteredTotal.WithLabelValues("exists").Inc()
		return c.JSON(http.StatusOK, map[string]string{"message": "User already exists"})
	}

	metrics.UsersRegisteredTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, res.Insert)
}

// AdminStatus handles GET /users/admin/:email (bearer). Asking about any
// email other than the caller's own answers false without a store lookup.
//
// @Summary      Check whether a user is an admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  adminStatusResponse
// @Failure      401    {object}  map[string]any
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	email := c.Param("email")
	callerEmail, _ := c.Get(middleware.ContextKeyEmail).(string)

	admin, err := h.service.AdminStatus(c.Request().Context(), callerEmail, email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminStatusResponse{Admin: admin})
}

// Promote handles PATCH /users/admin/:id (bearer + admin). The store's
// matched/modified counts are reported verbatim.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200 {object}  ports.UpdateResult
// @Failure      401 {object}  map[string]any
// @Failure      403 {object}  map[string]any
// @Router       /users/admin/{id} [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	res, err := h.service.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
