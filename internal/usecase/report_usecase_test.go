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

func reportWindow() (time.Time, time.Time) {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
}

func TestReportUseCase_Build(t *testing.T) {
	t.Run("zero range", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil)
		_, err := uc.Build(context.Background(), entities.UserProfile{Role: entities.RoleMaintenance}, ReportFilters{})
		if !errors.Is(err, ErrInvalidReportRange) {
			t.Fatalf("expected ErrInvalidReportRange, got %v", err)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil)
		from, to := reportWindow()
		_, err := uc.Build(context.Background(), entities.UserProfile{Role: entities.RoleMaintenance}, ReportFilters{From: to, To: from})
		if !errors.Is(err, ErrInvalidReportRange) {
			t.Fatalf("expected ErrInvalidReportRange, got %v", err)
		}
	})

	t.Run("aggregates over the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		maintenance := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewReportUseCase(orders, maintenance)

		from, to := reportWindow()
		inWindow := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		outOfWindow := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		completed := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

		orders.EXPECT().ListAll(gomock.Any(), entities.RequestStatus("")).Return([]entities.Order{
			{RequestBase: entities.RequestBase{ID: "o-1", RestaurantID: entities.RestaurantGigio, Status: entities.StatusPending, CreatedAt: inWindow}, Category: entities.OrderCategoryFood},
			{RequestBase: entities.RequestBase{ID: "o-2", RestaurantID: entities.RestaurantGigio, Status: entities.StatusPending, CreatedAt: outOfWindow}, Category: entities.OrderCategoryFood},
		}, nil)
		maintenance.EXPECT().ListAll(gomock.Any(), entities.RequestStatus("")).Return([]entities.MaintenanceRequest{
			{RequestBase: entities.RequestBase{ID: "m-1", RestaurantID: entities.RestaurantTigers, Status: entities.StatusCompleted, CreatedAt: inWindow}, Category: entities.MaintenanceCategoryPlumbing, ActualCompletionDate: &completed},
			{RequestBase: entities.RequestBase{ID: "m-2", RestaurantID: entities.RestaurantTigers, Status: entities.StatusPending, CreatedAt: inWindow}, Category: entities.MaintenanceCategoryPlumbing},
		}, nil)

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		report, err := uc.Build(context.Background(), actor, ReportFilters{From: from, To: to})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalOrders != 1 {
			t.Fatalf("expected 1 order in window, got %d", report.TotalOrders)
		}
		if report.TotalMaintenance != 2 {
			t.Fatalf("expected 2 maintenance requests, got %d", report.TotalMaintenance)
		}
		if report.PendingMaintenance != 1 {
			t.Fatalf("expected 1 pending maintenance, got %d", report.PendingMaintenance)
		}
		if report.AverageResolutionDays != 2 {
			t.Fatalf("expected 2 day average, got %v", report.AverageResolutionDays)
		}
		if len(report.OrdersByRestaurant) != len(entities.Restaurants) {
			t.Fatalf("expected a bar per restaurant, got %d", len(report.OrdersByRestaurant))
		}
		if report.OrdersByRestaurant[1].Name != "Gigio" || report.OrdersByRestaurant[1].Count != 1 {
			t.Fatalf("unexpected per-restaurant counts: %+v", report.OrdersByRestaurant)
		}
	})

	t.Run("maintenance may narrow to one restaurant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		maintenance := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewReportUseCase(orders, maintenance)

		from, to := reportWindow()
		orders.EXPECT().ListByRestaurant(gomock.Any(), entities.RestaurantGigio, entities.RequestStatus("")).Return([]entities.Order{}, nil)
		maintenance.EXPECT().ListByRestaurant(gomock.Any(), entities.RestaurantGigio, entities.RequestStatus("")).Return([]entities.MaintenanceRequest{}, nil)

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		if _, err := uc.Build(context.Background(), actor, ReportFilters{From: from, To: to, RestaurantID: entities.RestaurantGigio}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-maintenance restaurant filter is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		maintenance := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewReportUseCase(orders, maintenance)

		from, to := reportWindow()
		// the actor asks for Tigers but stays pinned to Gigio
		orders.EXPECT().ListByRestaurant(gomock.Any(), entities.RestaurantGigio, entities.RequestStatus("")).Return([]entities.Order{}, nil)
		maintenance.EXPECT().ListByRestaurant(gomock.Any(), entities.RestaurantGigio, entities.RequestStatus("")).Return([]entities.MaintenanceRequest{}, nil)

		actor := entities.UserProfile{UID: "u-1", Role: entities.RoleRestaurantManager, RestaurantID: restaurantPtr(entities.RestaurantGigio)}
		if _, err := uc.Build(context.Background(), actor, ReportFilters{From: from, To: to, RestaurantID: entities.RestaurantTigers}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
