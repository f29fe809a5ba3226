package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/service"
)

type AddressHandler struct {
	addressService service.AddressService
	userService    service.UserService
}

func NewAddressHandler(addressService service.AddressService, userService service.UserService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		userService:    userService,
	}
}

func (h *AddressHandler) GetMyAddresses(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	addresses, err := h.addressService.ListByUser(ctx, user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, addresses)
}

func (h *AddressHandler) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	address, err := h.addressService.Create(ctx, user.ID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"address": address,
	})
}

func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	address, err := h.addressService.Update(ctx, user.ID, id, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"address": address,
	})
}

func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.addressService.Delete(ctx, user.ID, id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Address deleted successfully",
	})
}

func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	address, err := h.addressService.SetDefault(ctx, user.ID, id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"address": address,
	})
}
