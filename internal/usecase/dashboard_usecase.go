package usecase

import (
	"context"

	"resto_requests/internal/domain/access"
	"resto_requests/internal/domain/entities"
	"resto_requests/internal/domain/query"
	"resto_requests/internal/usecase/interfaces"
)

// recentPanelSize is how many rows the dashboard "recent" panels show.
const recentPanelSize = 5

// DashboardSummary is everything the landing page renders: the pending
// panels, the combined recent feed and the stat-card counts.

type DashboardSummary struct {
	PendingOrders      []entities.Order
	PendingMaintenance []entities.MaintenanceRequest
	RecentRequests     []entities.RequestBase

	PendingOrderCount       int
	PendingMaintenanceCount int
	OrdersByStatus          map[string]int
	MaintenanceByStatus     map[string]int
}

type IDashboardUseCase interface {
	Summary(ctx context.Context, actor entities.UserProfile) (DashboardSummary, error)
}

type DashboardUseCase struct {
	orders      interfaces.IOrderRepository
	maintenance interfaces.IMaintenanceRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders interfaces.IOrderRepository, maintenance interfaces.IMaintenanceRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, maintenance: maintenance}
}

func (u *DashboardUseCase) Summary(ctx context.Context, actor entities.UserProfile) (DashboardSummary, error) {
	scope := access.ResolveScope(actor)

	allOrders, err := u.listOrders(ctx, scope)
	if err != nil {
		return DashboardSummary{}, err
	}
	allMaintenance, err := u.listMaintenance(ctx, scope)
	if err != nil {
		return DashboardSummary{}, err
	}

	pendingOrders := query.FilterByPredicates(allOrders, query.Predicates{Status: entities.StatusPending})
	pendingMaintenance := query.FilterByPredicates(allMaintenance, query.Predicates{Status: entities.StatusPending})

	recent := make([]entities.RequestBase, 0, len(allOrders)+len(allMaintenance))
	for _, o := range allOrders {
		recent = append(recent, o.RequestBase)
	}
	for _, m := range allMaintenance {
		recent = append(recent, m.RequestBase)
	}

	statusOf := func(b entities.RequestBase) string { return string(b.Status) }

	return DashboardSummary{
		PendingOrders:      query.TopN(query.SortBy(pendingOrders, query.SortKeyCreatedAt, query.SortDesc), recentPanelSize),
		PendingMaintenance: query.TopN(query.SortBy(pendingMaintenance, query.SortKeyCreatedAt, query.SortDesc), recentPanelSize),
		RecentRequests:     query.TopN(query.SortBy(recent, query.SortKeyCreatedAt, query.SortDesc), recentPanelSize),

		PendingOrderCount:       len(pendingOrders),
		PendingMaintenanceCount: len(pendingMaintenance),
		OrdersByStatus: query.GroupCount(allOrders, func(o entities.Order) string {
			return statusOf(o.RequestBase)
		}),
		MaintenanceByStatus: query.GroupCount(allMaintenance, func(m entities.MaintenanceRequest) string {
			return statusOf(m.RequestBase)
		}),
	}, nil
}

func (u *DashboardUseCase) listOrders(ctx context.Context, scope access.Scope) ([]entities.Order, error) {
	if scope.All {
		return u.orders.ListAll(ctx, "")
	}
	return u.orders.ListByRestaurant(ctx, scope.RestaurantID, "")
}

func (u *DashboardUseCase) listMaintenance(ctx context.Context, scope access.Scope) ([]entities.MaintenanceRequest, error) {
	if scope.All {
		return u.maintenance.ListAll(ctx, "")
	}
	return u.maintenance.ListByRestaurant(ctx, scope.RestaurantID, "")
}
