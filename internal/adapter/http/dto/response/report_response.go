package response

import "resto_requests/internal/usecase"

type RestaurantCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ReportResponse struct {
	TotalOrders      int `json:"total_orders"`
	TotalMaintenance int `json:"total_maintenance"`

	OrdersByRestaurant    []RestaurantCountResponse `json:"orders_by_restaurant"`
	OrdersByCategory      map[string]int            `json:"orders_by_category"`
	MaintenanceByStatus   map[string]int            `json:"maintenance_by_status"`
	MaintenanceByCategory map[string]int            `json:"maintenance_by_category"`

	AverageResolutionDays float64 `json:"average_resolution_days"`
	PendingMaintenance    int     `json:"pending_maintenance"`
}

func FromReport(r usecase.Report) ReportResponse {
	byRestaurant := make([]RestaurantCountResponse, 0, len(r.OrdersByRestaurant))
	for _, rc := range r.OrdersByRestaurant {
		byRestaurant = append(byRestaurant, RestaurantCountResponse(rc))
	}
	return ReportResponse{
		TotalOrders:      r.TotalOrders,
		TotalMaintenance: r.TotalMaintenance,

		OrdersByRestaurant:    byRestaurant,
		OrdersByCategory:      r.OrdersByCategory,
		MaintenanceByStatus:   r.MaintenanceByStatus,
		MaintenanceByCategory: r.MaintenanceByCategory,

		AverageResolutionDays: r.AverageResolutionDays,
		PendingMaintenance:    r.PendingMaintenance,
	}
}
