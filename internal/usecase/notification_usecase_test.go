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

func TestNotificationUseCase_ListForUser(t *testing.T) {
	t.Run("regular user only sees their own feed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().ListByUser(gomock.Any(), "u-1").Return([]entities.Notification{{ID: "n-1", UserID: "u-1"}}, nil)

		actor := entities.UserProfile{UID: "u-1", Role: entities.RoleEmployee}
		got, err := uc.ListForUser(context.Background(), actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "n-1" {
			t.Fatalf("unexpected feed: %+v", got)
		}
	})

	t.Run("maintenance merges the shared feed, newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		older := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		newer := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByUser(gomock.Any(), "m-1").Return([]entities.Notification{{ID: "own", UserID: "m-1", CreatedAt: older}}, nil)
		repo.EXPECT().ListByUser(gomock.Any(), entities.NotificationAudienceMaintenance).Return([]entities.Notification{{ID: "shared", UserID: entities.NotificationAudienceMaintenance, CreatedAt: newer}}, nil)

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		got, err := uc.ListForUser(context.Background(), actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected merged feed of 2, got %d", len(got))
		}
		if got[0].ID != "shared" {
			t.Fatalf("expected newest first, got %s", got[0].ID)
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("missing notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Notification{}, nil)

		actor := entities.UserProfile{UID: "u-1", Role: entities.RoleEmployee}
		_, err := uc.MarkRead(context.Background(), actor, "nope")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("someone else's notification reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "other"}, nil)

		actor := entities.UserProfile{UID: "u-1", Role: entities.RoleEmployee}
		_, err := uc.MarkRead(context.Background(), actor, "n-1")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("maintenance may acknowledge the shared feed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		shared := entities.Notification{ID: "n-1", UserID: entities.NotificationAudienceMaintenance}
		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(shared, nil)
		read := shared
		read.Read = true
		repo.EXPECT().MarkRead(gomock.Any(), "n-1").Return(read, nil)

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		got, err := uc.MarkRead(context.Background(), actor, "n-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Read {
			t.Fatalf("expected read flag set")
		}
	})
}
