package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// TokenHandler issues bearer tokens from caller-supplied claims.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt.
//
// The body carries arbitrary identity claims; email is the one claim the
// access gate depends on, so it must be present.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Caller claims (email at minimum)"
// @Success      200   {object}  issueTokenResponse
// @Failure      400   {object}  map[string]any
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var claims domain.Claims
	if err := c.Bind(&claims); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if claims.Email() == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, issueTokenResponse{Token: token})
}
