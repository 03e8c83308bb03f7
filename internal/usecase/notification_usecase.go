package usecase

import (
	"context"
	"errors"
	"sort"

	"resto_requests/internal/domain/entities"
	"resto_requests/internal/usecase/interfaces"
)

var ErrNotificationNotFound = errors.New("notification not found")

// INotificationUseCase lists and acknowledges the notifications emitted by
// request creation. Maintenance staff additionally see the shared
// maintenance-audience feed.

type INotificationUseCase interface {
	ListForUser(ctx context.Context, actor entities.UserProfile) ([]entities.Notification, error)
	MarkRead(ctx context.Context, actor entities.UserProfile, id string) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListForUser(ctx context.Context, actor entities.UserProfile) ([]entities.Notification, error) {
	own, err := u.repo.ListByUser(ctx, actor.UID)
	if err != nil {
		return nil, err
	}

	if actor.Role == entities.RoleMaintenance {
		shared, err := u.repo.ListByUser(ctx, entities.NotificationAudienceMaintenance)
		if err != nil {
			return nil, err
		}
		own = append(own, shared...)
	}

	sort.SliceStable(own, func(i, j int) bool {
		return own[i].CreatedAt.After(own[j].CreatedAt)
	})
	return own, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, actor entities.UserProfile, id string) (entities.Notification, error) {
	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" || !visibleTo(n, actor) {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return u.repo.MarkRead(ctx, id)
}

func visibleTo(n entities.Notification, actor entities.UserProfile) bool {
	if n.UserID == actor.UID {
		return true
	}
	return n.UserID == entities.NotificationAudienceMaintenance && actor.Role == entities.RoleMaintenance
}
