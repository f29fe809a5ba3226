package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
	userService  service.UserService
}

func NewOrderHandler(orderService service.OrderService, userService service.UserService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		userService:  userService,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.orderService.Create(ctx, user.ID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetMyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListByUser(ctx, user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrderByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderService.GetByID(ctx, id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, order)
}
