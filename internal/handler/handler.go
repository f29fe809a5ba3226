package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/middleware"
	"storefront-backend/internal/model"
	"storefront-backend/internal/service"
)

// httpError maps service sentinels onto HTTP statuses. Anything unmapped
// bubbles up to echo's recover/error middleware as a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, service.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidOrderAmount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRecordNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrPaymentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrOrderAlreadyPaid):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}

func currentUser(c echo.Context, users service.UserService) (*model.User, error) {
	user, err := users.Resolve(c.Request().Context(), middleware.UsernameFromContext(c))
	if err != nil {
		return nil, httpError(err)
	}
	return user, nil
}

func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
