package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "nutriplan/internal/delivery/context"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID   = "userID"
	contextKeyUsername = "username"
	bearerPrefix       = "Bearer "
)

// AuthMiddleware resolves the bearer token of a request to an existing user.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC}
}

// Authenticate rejects requests without a valid token for a user that still exists.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthenticated.WithDetails("Invalid token format, must be Bearer token")
		}
		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

		user, err := m.userUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(contextKeyUserID, user.ID)
		c.Set(contextKeyUsername, user.Username)

		ctx := deliverycontext.WithLoggerAttrs(c.Request().Context(), slog.String("user_id", user.ID.String()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated user's id set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetUsername returns the authenticated user's name set by Authenticate.
func GetUsername(c echo.Context) (string, bool) {
	username, ok := c.Get(contextKeyUsername).(string)

	return username, ok
}
