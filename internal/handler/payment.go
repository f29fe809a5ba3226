package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.paymentService.ProcessPayment(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) GetPaymentByOrderID(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := idParam(c, "orderId")
	if err != nil {
		return err
	}

	result, err := h.paymentService.GetByOrderID(ctx, orderID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}
