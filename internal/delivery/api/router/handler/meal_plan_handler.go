package handler

import (
	"net/http"

	"nutriplan/internal/delivery/api/middleware"
	"nutriplan/internal/delivery/api/response"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MealPlanHandler serves plan generation, retrieval and dining-out edits.
type MealPlanHandler struct {
	uc usecase.MealPlanUsecase
}

// NewMealPlanHandler is the constructor for MealPlanHandler, injected by Fx.
func NewMealPlanHandler(uc usecase.MealPlanUsecase) *MealPlanHandler {
	return &MealPlanHandler{uc: uc}
}

// GenerateMealPlan creates a new plan from the caller's profile.
func (h *MealPlanHandler) GenerateMealPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	plan, err := h.uc.GenerateMealPlan(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMealPlanResponse(plan))
}

// GetLatestMealPlan returns the caller's newest plan.
func (h *MealPlanHandler) GetLatestMealPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	plan, err := h.uc.GetLatestMealPlan(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMealPlanResponse(plan))
}

// GetMealPlan returns one of the caller's plans.
func (h *MealPlanHandler) GetMealPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	planID, err := parsePlanID(c, "id")
	if err != nil {
		return err
	}

	plan, err := h.uc.GetMealPlan(c.Request().Context(), userID, planID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMealPlanResponse(plan))
}

// SetDiningOut flags or unflags one meal as eaten out.
func (h *MealPlanHandler) SetDiningOut(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	planID, err := parsePlanID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.SetDiningOutInput
	if err := c.Bind(&input); err != nil {
		return response.InvalidInput(c, "Invalid dining status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	input.PlanID = planID

	plan, err := h.uc.SetDiningOut(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMealPlanResponse(plan))
}

func parsePlanID(c echo.Context, param string) (uuid.UUID, error) {
	planID, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("meal plan id must be a UUID")
	}

	return planID, nil
}
