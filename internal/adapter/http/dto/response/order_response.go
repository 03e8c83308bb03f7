package response

import (
	"time"

	"resto_requests/internal/domain/entities"
)

type OrderItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Notes    string `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatedBy    string    `json:"created_by"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Department   string    `json:"department"`
	Comments     string    `json:"comments"`
	PhotoURLs    []string  `json:"photo_urls,omitempty"`
	AssignedTo   string    `json:"assigned_to,omitempty"`

	Category              string              `json:"category"`
	Items                 []OrderItemResponse `json:"items"`
	IsRecurring           bool                `json:"is_recurring"`
	RecurringFrequency    string              `json:"recurring_frequency,omitempty"`
	EstimatedDeliveryDate *time.Time          `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time          `json:"actual_delivery_date,omitempty"`

	// CanEdit is only populated on detail reads, for the edit action.
	CanEdit bool `json:"can_edit"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse(it))
	}
	return OrderResponse{
		ID:           o.ID,
		Type:         string(o.Type),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		CreatedBy:    o.CreatedBy,
		RestaurantID: string(o.RestaurantID),
		Status:       string(o.Status),
		Priority:     string(o.Priority),
		Department:   string(o.Department),
		Comments:     o.Comments,
		PhotoURLs:    o.PhotoURLs,
		AssignedTo:   o.AssignedTo,

		Category:              string(o.Category),
		Items:                 items,
		IsRecurring:           o.IsRecurring,
		RecurringFrequency:    string(o.RecurringFrequency),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate,
		ActualDeliveryDate:    o.ActualDeliveryDate,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
