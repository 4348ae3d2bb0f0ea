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

// ProfileHandler serves the caller's dietary profile.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile returns the caller's account and profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &UserProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Profile:  user.Profile,
	})
}

// UpdateProfile replaces the caller's profile with the request body.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.ProfileInput
	if err := c.Bind(&input); err != nil {
		return response.InvalidInput(c, "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	username, _ := middleware.GetUsername(c)

	return response.Success(c, http.StatusOK, &UserProfileResponse{
		ID:       userID,
		Username: username,
		Profile:  profile,
	})
}
