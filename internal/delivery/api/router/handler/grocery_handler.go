package handler

import (
	"net/http"

	"nutriplan/internal/delivery/api/middleware"
	"nutriplan/internal/delivery/api/response"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GroceryHandler serves grocery lists derived from meal plans.
type GroceryHandler struct {
	uc usecase.MealPlanUsecase
}

// NewGroceryHandler is the constructor for GroceryHandler, injected by Fx.
func NewGroceryHandler(uc usecase.MealPlanUsecase) *GroceryHandler {
	return &GroceryHandler{uc: uc}
}

// GetGroceryList returns the ingredients of every home-cooked meal of a plan.
func (h *GroceryHandler) GetGroceryList(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	planID, err := parsePlanID(c, "planId")
	if err != nil {
		return err
	}

	list, err := h.uc.GetGroceryList(c.Request().Context(), userID, planID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetGroceryListQR returns a PNG QR code linking to the grocery list.
func (h *GroceryHandler) GetGroceryListQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	planID, err := parsePlanID(c, "planId")
	if err != nil {
		return err
	}

	png, err := h.uc.GetGroceryListQR(c.Request().Context(), userID, planID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}
