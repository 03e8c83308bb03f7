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

func restaurantPtr(id entities.RestaurantID) *entities.RestaurantID { return &id }

func validOrderInput() NewOrderInput {
	return NewOrderInput{
		Category:   entities.OrderCategoryFood,
		Items:      []entities.OrderItem{{Name: "flour", Quantity: 5, Unit: "kg"}},
		Priority:   entities.PriorityNormal,
		Department: entities.DepartmentKitchen,
	}
}

func TestOrderUseCase_Create(t *testing.T) {
	actor := entities.UserProfile{
		UID:          "u-1",
		Role:         entities.RoleEmployee,
		RestaurantID: restaurantPtr(entities.RestaurantGigio),
	}

	t.Run("no restaurant assigned", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.UserProfile{UID: "u-1", Role: entities.RoleEmployee}, validOrderInput())
		if !errors.Is(err, ErrNoRestaurantAssigned) {
			t.Fatalf("expected ErrNoRestaurantAssigned, got %v", err)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		in := validOrderInput()
		in.Items = nil
		_, err := uc.Create(context.Background(), actor, in)
		if !errors.Is(err, ErrEmptyOrderItems) {
			t.Fatalf("expected ErrEmptyOrderItems, got %v", err)
		}
	})

	t.Run("invalid item line", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		in := validOrderInput()
		in.Items = []entities.OrderItem{{Name: "flour", Quantity: 0, Unit: "kg"}}
		_, err := uc.Create(context.Background(), actor, in)
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("recurring without frequency", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		in := validOrderInput()
		in.IsRecurring = true
		_, err := uc.Create(context.Background(), actor, in)
		if !errors.Is(err, ErrInvalidRecurrence) {
			t.Fatalf("expected ErrInvalidRecurrence, got %v", err)
		}
	})

	t.Run("success forces pending status and notifies maintenance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewOrderUseCase(repo, notifications)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.StatusPending {
					t.Fatalf("expected pending status, got %s", o.Status)
				}
				if o.RestaurantID != entities.RestaurantGigio {
					t.Fatalf("expected restaurant from actor, got %s", o.RestaurantID)
				}
				if o.CreatedBy != "u-1" {
					t.Fatalf("expected creator u-1, got %s", o.CreatedBy)
				}
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				return o, nil
			})
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.UserID != entities.NotificationAudienceMaintenance {
					t.Fatalf("expected maintenance audience, got %s", n.UserID)
				}
				if n.RelatedTo.Type != entities.RequestTypeOrder {
					t.Fatalf("expected order target, got %s", n.RelatedTo.Type)
				}
				return n, nil
			})

		if _, err := uc.Create(context.Background(), actor, validOrderInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("notification failure does not fail the create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewOrderUseCase(repo, notifications)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("ddb down"))

		if _, err := uc.Create(context.Background(), actor, validOrderInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Order{}, nil)

		actor := entities.UserProfile{UID: "u-1", Role: entities.RoleMaintenance}
		_, err := uc.GetByID(context.Background(), actor, "nope")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("other restaurant reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		stored := entities.Order{RequestBase: entities.RequestBase{ID: "o-1", RestaurantID: entities.RestaurantTigers}}
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(stored, nil)

		actor := entities.UserProfile{UID: "u-1", Role: entities.RoleEmployee, RestaurantID: restaurantPtr(entities.RestaurantGigio)}
		_, err := uc.GetByID(context.Background(), actor, "o-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("maintenance reads any restaurant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		stored := entities.Order{RequestBase: entities.RequestBase{ID: "o-1", RestaurantID: entities.RestaurantTigers}}
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(stored, nil)

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance, RestaurantID: restaurantPtr(entities.RestaurantGigio)}
		got, err := uc.GetByID(context.Background(), actor, "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "o-1" {
			t.Fatalf("expected o-1, got %s", got.ID)
		}
	})
}

func TestOrderUseCase_Update(t *testing.T) {
	stored := entities.Order{
		RequestBase: entities.RequestBase{
			ID:           "o-1",
			CreatedBy:    "creator",
			RestaurantID: entities.RestaurantGigio,
			Status:       entities.StatusInProgress,
			UpdatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Category: entities.OrderCategoryFood,
		Items:    []entities.OrderItem{{Name: "flour", Quantity: 5, Unit: "kg"}},
	}

	t.Run("edit rejected for unrelated employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(stored, nil)

		actor := entities.UserProfile{UID: "someone", Role: entities.RoleEmployee, RestaurantID: restaurantPtr(entities.RestaurantGigio)}
		status := entities.StatusCompleted
		_, err := uc.Update(context.Background(), actor, "o-1", OrderPatch{Status: &status})
		if !errors.Is(err, ErrEditNotAllowed) {
			t.Fatalf("expected ErrEditNotAllowed, got %v", err)
		}
	})

	t.Run("invalid status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(stored, nil)

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		bad := entities.RequestStatus("done")
		_, err := uc.Update(context.Background(), actor, "o-1", OrderPatch{Status: &bad})
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("manager of the same restaurant patches status and bumps updated_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.StatusCompleted {
					t.Fatalf("expected completed, got %s", o.Status)
				}
				if !o.UpdatedAt.After(stored.UpdatedAt) {
					t.Fatalf("expected updated_at to be bumped")
				}
				if o.CreatedBy != "creator" || o.RestaurantID != entities.RestaurantGigio {
					t.Fatalf("immutable fields changed")
				}
				return o, nil
			})

		actor := entities.UserProfile{UID: "mgr", Role: entities.RoleBarManager, RestaurantID: restaurantPtr(entities.RestaurantGigio)}
		status := entities.StatusCompleted
		if _, err := uc.Update(context.Background(), actor, "o-1", OrderPatch{Status: &status}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("patch may not empty the item list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(stored, nil)

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		empty := []entities.OrderItem{}
		_, err := uc.Update(context.Background(), actor, "o-1", OrderPatch{Items: &empty})
		if !errors.Is(err, ErrEmptyOrderItems) {
			t.Fatalf("expected ErrEmptyOrderItems, got %v", err)
		}
	})
}

func TestOrderUseCase_List(t *testing.T) {
	t.Run("restaurant-bound actor queries its restaurant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		stored := []entities.Order{
			{RequestBase: entities.RequestBase{ID: "a", RestaurantID: entities.RestaurantGigio, Status: entities.StatusPending, CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}},
			{RequestBase: entities.RequestBase{ID: "b", RestaurantID: entities.RestaurantGigio, Status: entities.StatusPending, CreatedAt: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)}},
		}
		repo.EXPECT().ListByRestaurant(gomock.Any(), entities.RestaurantGigio, entities.RequestStatus("")).Return(stored, nil)

		actor := entities.UserProfile{UID: "u-1", Role: entities.RoleEmployee, RestaurantID: restaurantPtr(entities.RestaurantGigio)}
		got, err := uc.List(context.Background(), actor, RequestFilters{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(got))
		}
		// default view order is newest first
		if got[0].ID != "b" {
			t.Fatalf("expected b first, got %s", got[0].ID)
		}
	})

	t.Run("maintenance with no selection scans the chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().ListAll(gomock.Any(), entities.StatusPending).Return([]entities.Order{}, nil)

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		if _, err := uc.List(context.Background(), actor, RequestFilters{Status: entities.StatusPending}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().ListAll(gomock.Any(), entities.RequestStatus("")).Return(nil, errors.New("ddb"))

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		if _, err := uc.List(context.Background(), actor, RequestFilters{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
