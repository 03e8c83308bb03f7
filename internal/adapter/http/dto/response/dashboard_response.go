package response

import (
	"time"

	"resto_requests/internal/domain/entities"
	"resto_requests/internal/usecase"
)

// RequestSummaryResponse is a row of the combined "recent requests" feed.

type RequestSummaryResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Department   string    `json:"department"`
}

type DashboardResponse struct {
	PendingOrders      []OrderResponse          `json:"pending_orders"`
	PendingMaintenance []MaintenanceResponse    `json:"pending_maintenance"`
	RecentRequests     []RequestSummaryResponse `json:"recent_requests"`

	PendingOrderCount       int            `json:"pending_order_count"`
	PendingMaintenanceCount int            `json:"pending_maintenance_count"`
	OrdersByStatus          map[string]int `json:"orders_by_status"`
	MaintenanceByStatus     map[string]int `json:"maintenance_by_status"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	recent := make([]RequestSummaryResponse, 0, len(s.RecentRequests))
	for _, b := range s.RecentRequests {
		recent = append(recent, fromRequestBase(b))
	}
	return DashboardResponse{
		PendingOrders:      FromOrders(s.PendingOrders),
		PendingMaintenance: FromMaintenanceList(s.PendingMaintenance),
		RecentRequests:     recent,

		PendingOrderCount:       s.PendingOrderCount,
		PendingMaintenanceCount: s.PendingMaintenanceCount,
		OrdersByStatus:          s.OrdersByStatus,
		MaintenanceByStatus:     s.MaintenanceByStatus,
	}
}

func fromRequestBase(b entities.RequestBase) RequestSummaryResponse {
	return RequestSummaryResponse{
		ID:           b.ID,
		Type:         string(b.Type),
		CreatedAt:    b.CreatedAt,
		RestaurantID: string(b.RestaurantID),
		Status:       string(b.Status),
		Priority:     string(b.Priority),
		Department:   string(b.Department),
	}
}
