package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/service"
)

type SavedCardHandler struct {
	cardService service.SavedCardService
	userService service.UserService
}

func NewSavedCardHandler(cardService service.SavedCardService, userService service.UserService) *SavedCardHandler {
	return &SavedCardHandler{
		cardService: cardService,
		userService: userService,
	}
}

func (h *SavedCardHandler) GetMySavedCards(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	cards, err := h.cardService.ListByUser(ctx, user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, cards)
}

func (h *SavedCardHandler) CreateSavedCard(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	var req dto.SavedCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	card, err := h.cardService.Create(ctx, user.ID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"savedCard": card,
	})
}

func (h *SavedCardHandler) UpdateSavedCard(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SavedCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	card, err := h.cardService.Update(ctx, user.ID, id, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"savedCard": card,
	})
}

func (h *SavedCardHandler) DeleteSavedCard(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.cardService.Delete(ctx, user.ID, id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Saved card deleted successfully",
	})
}

func (h *SavedCardHandler) SetDefaultSavedCard(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	card, err := h.cardService.SetDefault(ctx, user.ID, id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"savedCard": card,
	})
}
