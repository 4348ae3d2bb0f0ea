// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nutriplan/internal/delivery/api/middleware"
	"nutriplan/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	MealPlanHandler *handler.MealPlanHandler
	GroceryHandler  *handler.GroceryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	mealPlanHandler *handler.MealPlanHandler
	groceryHandler  *handler.GroceryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		profileHandler:  params.ProfileHandler,
		mealPlanHandler: params.MealPlanHandler,
		groceryHandler:  params.GroceryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything below requires a bearer token
	protected := apiV1.Group("", r.authMiddleware.Authenticate)

	profileGroup := protected.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	mealPlansGroup := protected.Group("/meal-plans")
	{
		mealPlansGroup.POST("", r.mealPlanHandler.GenerateMealPlan)
		mealPlansGroup.GET("/latest", r.mealPlanHandler.GetLatestMealPlan)
		mealPlansGroup.GET("/:id", r.mealPlanHandler.GetMealPlan)
		mealPlansGroup.PUT("/:id/meals", r.mealPlanHandler.SetDiningOut)
	}

	groceryGroup := protected.Group("/grocery-lists")
	{
		groceryGroup.GET("/:planId", r.groceryHandler.GetGroceryList)
		groceryGroup.GET("/:planId/qr", r.groceryHandler.GetGroceryListQR)
	}
}
