package usecase

import (
	"context"
	"errors"
	"testing"

	"resto_requests/internal/domain/entities"
	mock_interfaces "resto_requests/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validMaintenanceInput() NewMaintenanceInput {
	return NewMaintenanceInput{
		Category:    entities.MaintenanceCategoryPlumbing,
		Location:    "kitchen sink",
		Description: "leaking pipe under the sink",
		Priority:    entities.PriorityUrgent,
		Department:  entities.DepartmentKitchen,
	}
}

func TestMaintenanceUseCase_Create(t *testing.T) {
	actor := entities.UserProfile{
		UID:          "u-1",
		Role:         entities.RoleEmployee,
		RestaurantID: restaurantPtr(entities.RestaurantTigers),
	}

	t.Run("missing location or description", func(t *testing.T) {
		uc := NewMaintenanceUseCase(nil, nil)

		in := validMaintenanceInput()
		in.Location = ""
		if _, err := uc.Create(context.Background(), actor, in); !errors.Is(err, ErrInvalidMaintenanceInput) {
			t.Fatalf("expected ErrInvalidMaintenanceInput, got %v", err)
		}

		in = validMaintenanceInput()
		in.Description = ""
		if _, err := uc.Create(context.Background(), actor, in); !errors.Is(err, ErrInvalidMaintenanceInput) {
			t.Fatalf("expected ErrInvalidMaintenanceInput, got %v", err)
		}
	})

	t.Run("success pins the restaurant and notifies maintenance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, notifications)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
				if m.RestaurantID != entities.RestaurantTigers {
					t.Fatalf("expected restaurant from actor, got %s", m.RestaurantID)
				}
				if m.Status != entities.StatusPending {
					t.Fatalf("expected pending status, got %s", m.Status)
				}
				if m.Type != entities.RequestTypeMaintenance {
					t.Fatalf("expected maintenance type, got %s", m.Type)
				}
				return m, nil
			})
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.UserID != entities.NotificationAudienceMaintenance {
					t.Fatalf("expected maintenance audience, got %s", n.UserID)
				}
				return n, nil
			})

		if _, err := uc.Create(context.Background(), actor, validMaintenanceInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMaintenanceUseCase_Update(t *testing.T) {
	stored := entities.MaintenanceRequest{
		RequestBase: entities.RequestBase{
			ID:           "m-1",
			CreatedBy:    "creator",
			RestaurantID: entities.RestaurantTigers,
			Status:       entities.StatusPending,
		},
		Category:    entities.MaintenanceCategoryPlumbing,
		Location:    "kitchen sink",
		Description: "leaking pipe",
	}

	t.Run("patch may not blank the location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(stored, nil)

		actor := entities.UserProfile{UID: "m-tech", Role: entities.RoleMaintenance}
		blank := ""
		_, err := uc.Update(context.Background(), actor, "m-1", MaintenancePatch{Location: &blank})
		if !errors.Is(err, ErrInvalidMaintenanceInput) {
			t.Fatalf("expected ErrInvalidMaintenanceInput, got %v", err)
		}
	})

	t.Run("creator edits while pending only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, nil)

		inProgress := stored
		inProgress.Status = entities.StatusInProgress
		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(inProgress, nil)

		actor := entities.UserProfile{UID: "creator", Role: entities.RoleEmployee, RestaurantID: restaurantPtr(entities.RestaurantTigers)}
		comments := "update"
		_, err := uc.Update(context.Background(), actor, "m-1", MaintenancePatch{Comments: &comments})
		if !errors.Is(err, ErrEditNotAllowed) {
			t.Fatalf("expected ErrEditNotAllowed, got %v", err)
		}
	})
}
