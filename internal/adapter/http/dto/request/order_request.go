package request

import (
	"time"

	"resto_requests/internal/domain/entities"
	"resto_requests/internal/usecase"
)

type OrderItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Unit     string `json:"unit" binding:"required"`
	Notes    string `json:"notes"`
}

// CreateOrderRequest is a supply-order creation form. Status, timestamps,
// creator and restaurant are never part of the payload; they are derived
// server-side from the authenticated profile.

type CreateOrderRequest struct {
	Category              string             `json:"category" binding:"required"`
	Items                 []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Priority              string             `json:"priority" binding:"required"`
	Department            string             `json:"department" binding:"required"`
	Comments              string             `json:"comments"`
	PhotoURLs             []string           `json:"photo_urls"`
	IsRecurring           bool               `json:"is_recurring"`
	RecurringFrequency    string             `json:"recurring_frequency"`
	EstimatedDeliveryDate *time.Time         `json:"estimated_delivery_date"`
}

func (r CreateOrderRequest) ToInput() usecase.NewOrderInput {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Unit:     it.Unit,
			Notes:    it.Notes,
		})
	}
	return usecase.NewOrderInput{
		Category:              entities.OrderCategory(r.Category),
		Items:                 items,
		Priority:              entities.PriorityLevel(r.Priority),
		Department:            entities.Department(r.Department),
		Comments:              r.Comments,
		PhotoURLs:             r.PhotoURLs,
		IsRecurring:           r.IsRecurring,
		RecurringFrequency:    entities.RecurringFrequency(r.RecurringFrequency),
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
	}
}

// UpdateOrderRequest is a partial edit; absent fields are left untouched.

type UpdateOrderRequest struct {
	Status                *string             `json:"status"`
	Priority              *string             `json:"priority"`
	Comments              *string             `json:"comments"`
	PhotoURLs             *[]string           `json:"photo_urls"`
	AssignedTo            *string             `json:"assigned_to"`
	Items                 *[]OrderItemRequest `json:"items"`
	EstimatedDeliveryDate *time.Time          `json:"estimated_delivery_date"`
	ActualDeliveryDate    *time.Time          `json:"actual_delivery_date"`
}

func (r UpdateOrderRequest) ToPatch() usecase.OrderPatch {
	patch := usecase.OrderPatch{
		Comments:              r.Comments,
		PhotoURLs:             r.PhotoURLs,
		AssignedTo:            r.AssignedTo,
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
		ActualDeliveryDate:    r.ActualDeliveryDate,
	}
	if r.Status != nil {
		status := entities.RequestStatus(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := entities.PriorityLevel(*r.Priority)
		patch.Priority = &priority
	}
	if r.Items != nil {
		items := make([]entities.OrderItem, 0, len(*r.Items))
		for _, it := range *r.Items {
			items = append(items, entities.OrderItem{
				Name:     it.Name,
				Quantity: it.Quantity,
				Unit:     it.Unit,
				Notes:    it.Notes,
			})
		}
		patch.Items = &items
	}
	return patch
}
