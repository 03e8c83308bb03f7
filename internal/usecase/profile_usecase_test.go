package usecase

import (
	"context"
	"errors"
	"testing"

	"resto_requests/internal/domain/entities"
	mock_interfaces "resto_requests/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProfileUseCase_ResolveIdentity(t *testing.T) {
	t.Run("blank uid", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		_, err := uc.ResolveIdentity(context.Background(), "   ", "a@b.c", "A")
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("existing profile is returned untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		stored := entities.UserProfile{UID: "u-1", Role: entities.RoleBarManager}
		repo.EXPECT().GetByUID(gomock.Any(), "u-1").Return(stored, nil)

		got, err := uc.ResolveIdentity(context.Background(), "u-1", "a@b.c", "A")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Role != entities.RoleBarManager {
			t.Fatalf("expected stored role, got %s", got.Role)
		}
	})

	t.Run("first sight creates a default employee profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().GetByUID(gomock.Any(), "new-uid").Return(entities.UserProfile{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.Role != entities.RoleEmployee {
					t.Fatalf("expected employee role, got %s", p.Role)
				}
				if p.RestaurantID != nil {
					t.Fatalf("expected no restaurant assignment")
				}
				if p.Email != "new@b.c" || p.DisplayName != "New" {
					t.Fatalf("claims not carried over: %+v", p)
				}
				return p, nil
			})

		if _, err := uc.ResolveIdentity(context.Background(), "new-uid", "new@b.c", "New"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProfileUseCase_UpdateProfile(t *testing.T) {
	t.Run("blank display name rejected", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		blank := "  "
		_, err := uc.UpdateProfile(context.Background(), entities.UserProfile{UID: "u-1"}, ProfilePatch{DisplayName: &blank})
		if !errors.Is(err, ErrInvalidProfilePatch) {
			t.Fatalf("expected ErrInvalidProfilePatch, got %v", err)
		}
	})

	t.Run("patch saves only provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.DisplayName != "Renamed" {
					t.Fatalf("expected display name patched, got %s", p.DisplayName)
				}
				if p.PhotoURL != "keep.png" {
					t.Fatalf("expected photo kept, got %s", p.PhotoURL)
				}
				return p, nil
			})

		actor := entities.UserProfile{UID: "u-1", DisplayName: "Old", PhotoURL: "keep.png"}
		name := "Renamed"
		if _, err := uc.UpdateProfile(context.Background(), actor, ProfilePatch{DisplayName: &name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProfileUseCase_SwitchRestaurant(t *testing.T) {
	t.Run("unknown restaurant", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		_, err := uc.SwitchRestaurant(context.Background(), actor, "99")
		if !errors.Is(err, ErrUnknownRestaurant) {
			t.Fatalf("expected ErrUnknownRestaurant, got %v", err)
		}
	})

	t.Run("non-maintenance may not roam", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		own := entities.RestaurantGigio
		actor := entities.UserProfile{UID: "u-1", Role: entities.RoleRoomManager, RestaurantID: &own}
		_, err := uc.SwitchRestaurant(context.Background(), actor, entities.RestaurantTigers)
		if !errors.Is(err, ErrSwitchNotAllowed) {
			t.Fatalf("expected ErrSwitchNotAllowed, got %v", err)
		}
	})

	t.Run("maintenance switch persists the selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.RestaurantID == nil || *p.RestaurantID != entities.RestaurantLaTetrade {
					t.Fatalf("expected La Tétrade selected, got %v", p.RestaurantID)
				}
				return p, nil
			})

		actor := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance}
		got, err := uc.SwitchRestaurant(context.Background(), actor, entities.RestaurantLaTetrade)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RestaurantID == nil || *got.RestaurantID != entities.RestaurantLaTetrade {
			t.Fatalf("expected selection on returned profile")
		}
	})
}
