package service

import (
	"context"
)

// Meal plan event types
const (
	EventMealPlanGenerated          = "meal_plan.generated"
	EventMealPlanDiningStatusChange = "meal_plan.dining_status_changed"
)

// MealPlanEvent is published whenever a plan is created or one of its meals changes.
type MealPlanEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	PlanID    string `json:"plan_id"`
	UserID    string `json:"user_id"`
	Source    string `json:"source,omitempty"`
	Day       int    `json:"day,omitempty"`
	MealType  string `json:"meal_type,omitempty"`
	DiningOut *bool  `json:"dining_out,omitempty"`
	Version   int64  `json:"version,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMealPlanEvent publishes a meal plan event for downstream consumers
	PublishMealPlanEvent(ctx context.Context, event *MealPlanEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
