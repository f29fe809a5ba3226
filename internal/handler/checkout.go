package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	userService     service.UserService
}

func NewCheckoutHandler(checkoutService service.CheckoutService, userService service.UserService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		userService:     userService,
	}
}

func (h *CheckoutHandler) CompleteCheckout(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.CompleteCheckout(ctx, user.ID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}
