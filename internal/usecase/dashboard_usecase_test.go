package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resto_requests/internal/domain/entities"
	mock_interfaces "resto_requests/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	t.Run("order repo error is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		maintenance := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewDashboardUseCase(orders, maintenance)

		orders.EXPECT().ListAll(gomock.Any(), entities.RequestStatus("")).Return(nil, errors.New("ddb"))

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		if _, err := uc.Summary(context.Background(), actor); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("panels, counts and recent feed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		maintenance := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewDashboardUseCase(orders, maintenance)

		at := func(day int) time.Time { return time.Date(2025, 3, day, 9, 0, 0, 0, time.UTC) }

		storedOrders := make([]entities.Order, 0, 7)
		for i := 1; i <= 7; i++ {
			storedOrders = append(storedOrders, entities.Order{RequestBase: entities.RequestBase{
				ID:           "o-" + string(rune('0'+i)),
				Type:         entities.RequestTypeOrder,
				RestaurantID: entities.RestaurantGigio,
				Status:       entities.StatusPending,
				CreatedAt:    at(i),
			}})
		}
		storedMaintenance := []entities.MaintenanceRequest{
			{RequestBase: entities.RequestBase{ID: "m-1", Type: entities.RequestTypeMaintenance, RestaurantID: entities.RestaurantGigio, Status: entities.StatusInProgress, CreatedAt: at(20)}},
		}

		orders.EXPECT().ListByRestaurant(gomock.Any(), entities.RestaurantGigio, entities.RequestStatus("")).Return(storedOrders, nil)
		maintenance.EXPECT().ListByRestaurant(gomock.Any(), entities.RestaurantGigio, entities.RequestStatus("")).Return(storedMaintenance, nil)

		actor := entities.UserProfile{UID: "u-1", Role: entities.RoleEmployee, RestaurantID: restaurantPtr(entities.RestaurantGigio)}
		summary, err := uc.Summary(context.Background(), actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.PendingOrderCount != 7 {
			t.Fatalf("expected 7 pending orders, got %d", summary.PendingOrderCount)
		}
		if len(summary.PendingOrders) != 5 {
			t.Fatalf("expected panel capped at 5, got %d", len(summary.PendingOrders))
		}
		if summary.PendingOrders[0].ID != "o-7" {
			t.Fatalf("expected newest pending order first, got %s", summary.PendingOrders[0].ID)
		}
		if summary.PendingMaintenanceCount != 0 {
			t.Fatalf("expected no pending maintenance, got %d", summary.PendingMaintenanceCount)
		}
		if len(summary.RecentRequests) != 5 {
			t.Fatalf("expected recent feed capped at 5, got %d", len(summary.RecentRequests))
		}
		// the maintenance request is the newest item overall
		if summary.RecentRequests[0].ID != "m-1" || summary.RecentRequests[0].Type != entities.RequestTypeMaintenance {
			t.Fatalf("expected m-1 first in recent feed, got %+v", summary.RecentRequests[0])
		}
		if summary.OrdersByStatus["pending"] != 7 {
			t.Fatalf("unexpected status counts: %+v", summary.OrdersByStatus)
		}
		if summary.MaintenanceByStatus["in_progress"] != 1 {
			t.Fatalf("unexpected maintenance status counts: %+v", summary.MaintenanceByStatus)
		}
	})
}
