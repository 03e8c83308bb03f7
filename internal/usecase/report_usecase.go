package usecase

import (
	"context"
	"errors"
	"time"

	"resto_requests/internal/domain/access"
	"resto_requests/internal/domain/entities"
	"resto_requests/internal/domain/query"
	"resto_requests/internal/usecase/interfaces"
)

var ErrInvalidReportRange = errors.New("invalid report date range")

// ReportFilters narrows the reporting window. The restaurant filter is only
// honored for maintenance staff; everyone else is pinned to their own
// restaurant regardless of what they ask for.

type ReportFilters struct {
	From         time.Time
	To           time.Time
	RestaurantID entities.RestaurantID
	Category     string
}

// RestaurantCount is one bar of the per-restaurant chart, labeled with the
// restaurant's display name.

type RestaurantCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Report aggregates both collections over the requested window.

type Report struct {
	TotalOrders      int
	TotalMaintenance int

	OrdersByRestaurant    []RestaurantCount
	OrdersByCategory      map[string]int
	MaintenanceByStatus   map[string]int
	MaintenanceByCategory map[string]int

	AverageResolutionDays float64
	PendingMaintenance    int
}

type IReportUseCase interface {
	Build(ctx context.Context, actor entities.UserProfile, filters ReportFilters) (Report, error)
}

type ReportUseCase struct {
	orders      interfaces.IOrderRepository
	maintenance interfaces.IMaintenanceRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(orders interfaces.IOrderRepository, maintenance interfaces.IMaintenanceRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders, maintenance: maintenance}
}

func (u *ReportUseCase) Build(ctx context.Context, actor entities.UserProfile, filters ReportFilters) (Report, error) {
	if filters.From.IsZero() || filters.To.IsZero() || filters.To.Before(filters.From) {
		return Report{}, ErrInvalidReportRange
	}

	scope := access.ResolveScope(actor)
	if actor.Role == entities.RoleMaintenance && filters.RestaurantID != "" {
		scope = access.ScopeFor(filters.RestaurantID)
	}

	var (
		orders []entities.Order
		reqs   []entities.MaintenanceRequest
		err    error
	)
	if scope.All {
		orders, err = u.orders.ListAll(ctx, "")
	} else {
		orders, err = u.orders.ListByRestaurant(ctx, scope.RestaurantID, "")
	}
	if err != nil {
		return Report{}, err
	}
	if scope.All {
		reqs, err = u.maintenance.ListAll(ctx, "")
	} else {
		reqs, err = u.maintenance.ListByRestaurant(ctx, scope.RestaurantID, "")
	}
	if err != nil {
		return Report{}, err
	}

	window := query.Predicates{
		CreatedFrom: &filters.From,
		CreatedTo:   &filters.To,
		Category:    filters.Category,
	}
	orders = query.FilterByPredicates(orders, window)
	reqs = query.FilterByPredicates(reqs, window)

	byRestaurant := query.GroupCount(orders, func(o entities.Order) string {
		return string(o.RestaurantID)
	})
	ordersByRestaurant := make([]RestaurantCount, 0, len(entities.Restaurants))
	for _, r := range entities.Restaurants {
		ordersByRestaurant = append(ordersByRestaurant, RestaurantCount{
			Name:  r.Name,
			Count: byRestaurant[string(r.ID)],
		})
	}

	return Report{
		TotalOrders:      len(orders),
		TotalMaintenance: len(reqs),

		OrdersByRestaurant: ordersByRestaurant,
		OrdersByCategory: query.GroupCount(orders, func(o entities.Order) string {
			return string(o.Category)
		}),
		MaintenanceByStatus: query.GroupCount(reqs, func(m entities.MaintenanceRequest) string {
			return string(m.Status)
		}),
		MaintenanceByCategory: query.GroupCount(reqs, func(m entities.MaintenanceRequest) string {
			return string(m.Category)
		}),

		AverageResolutionDays: query.AverageResolutionDays(reqs),
		PendingMaintenance:    len(query.FilterByPredicates(reqs, query.Predicates{Status: entities.StatusPending})),
	}, nil
}
